// Package templates renders the onboarding web pages.
package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/onboard/internal/platform/branding"
	webi18n "github.com/louisbranch/onboard/internal/services/web/i18n"
	"github.com/louisbranch/onboard/internal/services/web/routepath"
	"golang.org/x/text/language"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         language.Tag
	Loc          webi18n.Localizer
	CurrentPath  string
	CurrentQuery string
}

// T returns a translated string for key.
func (p PageContext) T(key string, args ...any) string {
	return webi18n.Text(p.Loc, key, args...)
}

// Toast is a one-shot notice shown above the page content.
type Toast struct {
	Kind    string
	Message string
}

// PageTitle localizes a title key that takes the product name.
func PageTitle(page PageContext, key string) string {
	return page.T(key, branding.AppName)
}

// Layout renders the document shell around the children in ctx.
func Layout(page PageContext, title string, description string, toast *Toast) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		children := templ.GetChildren(ctx)
		lang := page.Lang
		if lang == language.Und {
			lang = webi18n.Default()
		}

		h.raw("<!DOCTYPE html><html")
		h.attr("lang", lang.String())
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(title)
		h.raw("</title>")
		if description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", description)
			h.raw(">")
		}
		h.raw(`<link rel="stylesheet"`)
		h.attr("href", routepath.StaticPrefix+"onboard.css")
		h.raw(`><script src="https://unpkg.com/htmx.org@2.0.4" defer></script></head><body>`)

		h.raw(`<header class="site-header"><a class="brand"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(branding.AppName)
		h.raw(`</a><nav class="lang-nav"><ul>`)
		for _, option := range webi18n.LanguageOptions(page.Loc, lang, page.CurrentPath, page.CurrentQuery) {
			h.raw("<li><a")
			h.attr("href", option.URL)
			h.attr("hreflang", option.Tag)
			if option.Active {
				h.attr("aria-current", "true")
			}
			h.raw(">")
			h.text(option.Label)
			h.raw("</a></li>")
		}
		h.raw("</ul></nav></header>")

		h.render(ctx, ToastNotice(toast))
		h.raw(`<main id="main">`)
		h.render(templ.ClearChildren(ctx), children)
		h.raw("</main></body></html>")
	})
}

// ToastNotice renders toast, or nothing when toast is nil.
func ToastNotice(toast *Toast) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		if toast == nil || strings.TrimSpace(toast.Message) == "" {
			return
		}
		kind := strings.TrimSpace(toast.Kind)
		if kind == "" {
			kind = "info"
		}
		role := "status"
		if kind == "error" {
			role = "alert"
		}
		h.raw(`<div`)
		h.attr("class", "toast toast-"+kind)
		h.attr("role", role)
		h.raw(">")
		h.text(toast.Message)
		h.raw("</div>")
	})
}
