// Package profile defines the agent and client ProfileDraft variants, their
// wizard steps, and the gateway that persists a completed draft.
package profile

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/onboard/internal/services/web/platform/errors"
)

// Kind identifies a wizard variant.
type Kind string

const (
	KindAgent  Kind = "agent"
	KindClient Kind = "client"
)

// ParseKind parses a route segment into a Kind.
func ParseKind(raw string) (Kind, error) {
	switch kind := Kind(strings.ToLower(strings.TrimSpace(raw))); kind {
	case KindAgent, KindClient:
		return kind, nil
	default:
		return "", apperrors.EK(apperrors.KindNotFound, "error.not_found", fmt.Sprintf("unknown profile kind %q", raw))
	}
}

func (k Kind) String() string { return string(k) }
