// Package pagerender centralizes page rendering for full-page and HTMX flows.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/onboard/internal/services/web/i18n"
	flashnotice "github.com/louisbranch/onboard/internal/services/web/platform/flash"
	"github.com/louisbranch/onboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/onboard/internal/services/web/platform/requestmeta"
	webtemplates "github.com/louisbranch/onboard/internal/services/web/templates"
)

// Page describes a page response for both full-page and HTMX flows.
type Page struct {
	Title       string
	Description string
	StatusCode  int
	Fragment    templ.Component
}

// RequestPage resolves the language for r and builds the layout context.
// A language picked through the query param is persisted as a cookie.
func RequestPage(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	tag, persist := webi18n.ResolveTag(r)
	if persist {
		webi18n.SetLanguageCookie(w, tag)
	}
	page := webtemplates.PageContext{
		Lang: tag,
		Loc:  webi18n.Printer(tag),
	}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		page.CurrentQuery = r.URL.RawQuery
	}
	return page
}

// WritePage writes page. HTMX requests receive the fragment alone; other
// requests receive the full layout with any pending flash notice.
func WritePage(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, ctx webtemplates.PageContext, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
			return err
		}
	} else {
		toast := resolveFlashToast(w, r, policy, ctx.Loc)
		layout := webtemplates.Layout(ctx, page.Title, page.Description, toast)
		if err := layout.Render(templ.WithChildren(httpx.RequestContext(r), fragment), &buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, loc webi18n.Localizer) *webtemplates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r, policy)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(webi18n.Text(loc, notice.Key))
	if message == "" {
		return nil
	}
	return &webtemplates.Toast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}
