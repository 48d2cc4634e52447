// Package sessioncookie reads and writes the wizard session cookies.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/onboard/internal/services/web/platform/requestmeta"
)

const prefix = "onboard_wizard_"

// Name returns the cookie name for one wizard variant.
func Name(variant string) string {
	return prefix + strings.ToLower(strings.TrimSpace(variant))
}

// Read returns the trimmed cookie value when present.
func Read(r *http.Request, name string) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	return value, value != ""
}

// Write sets the cookie. The cookie is scoped to the onboarding routes and
// outlives the browser session by ttl.
func Write(w http.ResponseWriter, r *http.Request, name string, value string, ttl time.Duration, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := &http.Cookie{
		Name:     name,
		Value:    strings.TrimSpace(value),
		Path:     "/onboarding",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	}
	http.SetCookie(w, cookie)
}

// Clear expires the cookie.
func Clear(w http.ResponseWriter, r *http.Request, name string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/onboarding",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
