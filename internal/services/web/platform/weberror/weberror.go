// Package weberror renders localized error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	webi18n "github.com/louisbranch/onboard/internal/services/web/i18n"
	apperrors "github.com/louisbranch/onboard/internal/services/web/platform/errors"
	"github.com/louisbranch/onboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/onboard/internal/services/web/platform/pagerender"
	"github.com/louisbranch/onboard/internal/services/web/platform/requestmeta"
	webtemplates "github.com/louisbranch/onboard/internal/services/web/templates"
)

// ShouldRenderPage reports whether status should use the error-page UX.
func ShouldRenderPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		if localized := strings.TrimSpace(webi18n.Text(loc, key)); localized != "" {
			return localized
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteError writes a localized error response. JSON clients get
// {"error": message}; 404 and 5xx render the error page; other statuses
// are written as plain text.
func WriteError(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("web error: method=%s path=%s err=%v", requestMethod(r), requestPath(r), err)
	}
	page := pagerender.RequestPage(w, r)
	message := PublicMessage(page.Loc, err)

	if httpx.WantsJSON(r) {
		_ = httpx.WriteJSONError(w, statusCode, message)
		return
	}
	if !ShouldRenderPage(statusCode) {
		http.Error(w, message, statusCode)
		return
	}
	writePage(w, r, policy, page, statusCode, message)
}

// WriteNotFound renders a 404 error page.
func WriteNotFound(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	WriteError(w, r, policy, apperrors.EK(apperrors.KindNotFound, "error.not_found", "not found"))
}

func writePage(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, page webtemplates.PageContext, statusCode int, message string) {
	err := pagerender.WritePage(w, r, policy, page, pagerender.Page{
		Title:      webtemplates.PageTitle(page, "title.error"),
		StatusCode: statusCode,
		Fragment:   webtemplates.ErrorState(page, statusCode, message),
	})
	if err != nil {
		http.Error(w, message, statusCode)
	}
}

func requestMethod(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Method
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
