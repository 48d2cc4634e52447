// Package modulehandler provides a composable base for web module handlers.
//
// Modules share request localization, page rendering, flash notices and
// error handling. Handlers embed Base rather than duplicating that scaffold.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	flashnotice "github.com/louisbranch/onboard/internal/services/web/platform/flash"
	"github.com/louisbranch/onboard/internal/services/web/platform/pagerender"
	"github.com/louisbranch/onboard/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/onboard/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/onboard/internal/services/web/templates"
)

// Base carries the request scheme policy shared by module handlers.
type Base struct {
	policy requestmeta.SchemePolicy
}

// NewBase builds a handler base.
func NewBase(policy requestmeta.SchemePolicy) Base {
	return Base{policy: policy}
}

// Policy returns the scheme policy used for cookies.
func (b Base) Policy() requestmeta.SchemePolicy {
	return b.policy
}

// Page resolves the request language and builds the layout context.
func (b Base) Page(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	return pagerender.RequestPage(w, r)
}

// WritePage renders a page (HTMX-aware) and falls back to the error page
// when rendering fails.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, titleKey string, statusCode int, fragment templ.Component) {
	if err := pagerender.WritePage(w, r, b.policy, page, pagerender.Page{
		Title:       webtemplates.PageTitle(page, titleKey),
		Description: page.T("meta.description"),
		StatusCode:  statusCode,
		Fragment:    fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteError renders a localized error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteError(w, r, b.policy, err)
}

// WriteNotFound renders a 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteNotFound(w, r, b.policy)
}

// Flash queues a notice for the next full-page render.
func (b Base) Flash(w http.ResponseWriter, r *http.Request, notice flashnotice.Notice) {
	flashnotice.Write(w, r, notice, b.policy)
}
