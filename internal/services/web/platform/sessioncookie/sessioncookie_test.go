package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/louisbranch/onboard/internal/services/web/platform/requestmeta"
)

func TestName(t *testing.T) {
	t.Parallel()

	if got := Name(" Agent "); got != "onboard_wizard_agent" {
		t.Fatalf("Name() = %q", got)
	}
}

func TestRead(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil, Name("agent")); ok {
		t.Fatal("nil request returned a value")
	}
	req := httptest.NewRequest(http.MethodGet, "/onboarding/agent", nil)
	if _, ok := Read(req, Name("agent")); ok {
		t.Fatal("missing cookie returned a value")
	}
	req.AddCookie(&http.Cookie{Name: Name("agent"), Value: "  tok-1  "})
	got, ok := Read(req, Name("agent"))
	if !ok || got != "tok-1" {
		t.Fatalf("Read() = %q, %v", got, ok)
	}
	if _, ok := Read(req, Name("client")); ok {
		t.Fatal("agent cookie leaked into client lookup")
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/onboarding/client", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	Write(rr, req, Name("client"), "tok-2", time.Hour, requestmeta.SchemePolicy{TrustForwardedProto: true})

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != "onboard_wizard_client" || c.Value != "tok-2" {
		t.Fatalf("cookie = %s=%s", c.Name, c.Value)
	}
	if !c.Secure || !c.HttpOnly || c.Path != "/onboarding" {
		t.Fatalf("cookie attributes = %+v", c)
	}
	if c.MaxAge != 3600 {
		t.Fatalf("MaxAge = %d, want 3600", c.MaxAge)
	}
	Write(nil, req, Name("client"), "ignored", time.Hour, requestmeta.SchemePolicy{})
}

func TestClear(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Clear(rr, httptest.NewRequest(http.MethodPost, "/onboarding/agent/reset", nil), Name("agent"), requestmeta.SchemePolicy{})
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %#v", cookies)
	}
	Clear(nil, nil, Name("agent"), requestmeta.SchemePolicy{})
}
