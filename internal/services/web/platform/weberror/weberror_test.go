package weberror

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/onboard/internal/services/web/platform/errors"
	"github.com/louisbranch/onboard/internal/services/web/platform/requestmeta"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestWriteErrorRendersErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/onboarding/robot", nil)
	rr := httptest.NewRecorder()
	WriteNotFound(rr, req, requestmeta.SchemePolicy{})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `class="error-state"`) {
		t.Fatalf("body missing error state marker: %q", body)
	}
	if !strings.Contains(body, "The page you requested does not exist.") {
		t.Fatalf("body missing localized message: %q", body)
	}
}

func TestWriteErrorWritesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/onboarding/agent/step", nil)
	rr := httptest.NewRecorder()
	WriteError(rr, req, requestmeta.SchemePolicy{}, apperrors.E(apperrors.KindInvalidInput, "bad form"))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request message", body)
	}
	if strings.Contains(body, "bad form") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestWriteErrorWritesJSONWhenRequested(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/onboarding/agent/submit", nil)
	req.Header.Set("Accept", "application/json")
	rr := httptest.NewRecorder()
	WriteError(rr, req, requestmeta.SchemePolicy{}, apperrors.Wrap(apperrors.KindUnavailable, "error.backend_unavailable", errors.New("dial tcp")))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	var payload map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["error"] != "A required service is unavailable." {
		t.Fatalf("error = %q", payload["error"])
	}
}

func TestWriteErrorHTMXRendersFragment(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/onboarding/agent", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	WriteError(rr, req, requestmeta.SchemePolicy{}, errors.New("boom"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	body := rr.Body.String()
	if strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("htmx error should be a fragment: %q", body)
	}
	if strings.Contains(body, "boom") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestPublicMessagePrefersLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := message.NewPrinter(language.BrazilianPortuguese)
	got := PublicMessage(loc, apperrors.EK(apperrors.KindNotFound, "error.not_found", "missing"))
	if got != "A página solicitada não existe." {
		t.Fatalf("message = %q", got)
	}
	if PublicMessage(loc, nil) != "" {
		t.Fatal("nil error should have no message")
	}
}
