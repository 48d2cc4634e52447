package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/onboard/internal/services/web/routepath"
)

// ErrorState renders an error panel with a link back home.
func ErrorState(page PageContext, statusCode int, message string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="error-state"`)
		h.attr("data-status", strconv.Itoa(statusCode))
		h.raw("><h1>")
		h.text(page.T("error.heading"))
		h.raw("</h1><p>")
		h.text(message)
		h.raw(`</p><a class="button"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(page.T("nav.home"))
		h.raw("</a></section>")
	})
}
