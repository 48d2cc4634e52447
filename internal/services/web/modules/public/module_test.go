package public

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/onboard/internal/services/web/routepath"
)

func serve(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New().Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root {
		t.Fatalf("mount prefix = %q, want %q", mount.Prefix, routepath.Root)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func TestModuleIDReturnsPublic(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "public" {
		t.Fatalf("ID() = %q, want %q", got, "public")
	}
}

func TestMountServesLandingPage(t *testing.T) {
	t.Parallel()

	rr := serve(t, httptest.NewRequest(http.MethodGet, routepath.Root, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		"<!DOCTYPE html>",
		`href="` + routepath.Onboarding("agent") + `"`,
		`href="` + routepath.Onboarding("client") + `"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("landing page missing %q: %q", marker, body)
		}
	}
}

func TestMountServesHeadForLanding(t *testing.T) {
	t.Parallel()

	rr := serve(t, httptest.NewRequest(http.MethodHead, routepath.Root, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestMountLandingLocaleSwitchPersistsCookie(t *testing.T) {
	t.Parallel()

	rr := serve(t, httptest.NewRequest(http.MethodGet, routepath.Root+"?lang=pt-BR", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `lang="pt-BR"`) {
		t.Fatalf("landing page not rendered in pt-BR: %q", rr.Body.String())
	}
	found := false
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == "onboard_lang" && cookie.Value == "pt-BR" {
			found = true
		}
	}
	if !found {
		t.Fatalf("language cookie was not persisted")
	}
}

func TestMountUnknownPathRendersNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(t, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), `data-status="404"`) {
		t.Fatalf("404 page missing error state: %q", rr.Body.String())
	}
}
