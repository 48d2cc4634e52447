package profile

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup from free-text draft fields.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer uses the strict policy: no elements survive.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// maxSanitizePasses bounds how many layers of entity encoding are peeled.
const maxSanitizePasses = 8

// Text removes markup from raw and returns plain text; the rendering layer
// escapes on its own. Decoding entities can reveal markup, so passes repeat
// until the text no longer changes.
func (s *Sanitizer) Text(raw string) string {
	text := strings.TrimSpace(raw)
	for range maxSanitizePasses {
		next := strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
		if next == text {
			return text
		}
		text = next
	}
	return s.policy.Sanitize(text)
}

// Agent sanitizes the free-text fields of p in place.
func (s *Sanitizer) Agent(p *AgentProfile) {
	for _, field := range []*string{&p.FirstName, &p.LastName, &p.Phone, &p.Bio} {
		*field = s.Text(*field)
	}
}

// Client sanitizes the free-text fields of p in place.
func (s *Sanitizer) Client(p *ClientProfile) {
	for _, field := range []*string{&p.FirstName, &p.LastName, &p.Phone, &p.CompanyName, &p.ProjectSummary} {
		*field = s.Text(*field)
	}
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
