package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/onboard/internal/services/web/wizard"
)

// Review renders a read-only summary of every data-entry step.
func Review(page PageContext, view WizardView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="review">`)
		for _, step := range view.Steps {
			if len(step.Fields) == 0 {
				continue
			}
			h.raw(`<section class="review-step"`)
			h.attr("data-step", step.ID)
			h.raw("><h3>")
			h.text(page.T(step.TitleKey))
			h.raw("</h3><dl>")
			for _, spec := range step.Fields {
				h.raw("<dt>")
				h.text(page.T("field." + string(spec.Field)))
				h.raw("</dt><dd")
				h.attr("data-field", string(spec.Field))
				h.raw(">")
				summary := reviewValue(view, spec)
				if summary == "" {
					h.raw(`<span class="review-empty">`)
					h.text(page.T("review.empty"))
					h.raw("</span>")
				} else {
					h.text(summary)
				}
				if errKey := view.Errors[spec.Field]; errKey != "" {
					fieldError(h, page, spec.Field, errKey)
				}
				h.raw("</dd>")
			}
			h.raw("</dl></section>")
		}
		h.raw("</div>")
	})
}

func reviewValue(view WizardView, spec wizard.FieldSpec) string {
	value := view.value(spec.Field)
	switch spec.Kind {
	case wizard.KindChoice:
		if value.Text == "" {
			return ""
		}
		return view.optionTitle(spec.Category, value.Text)
	case wizard.KindMultiChoice:
		titles := make([]string, 0, len(value.Choices))
		for _, choice := range value.Choices {
			titles = append(titles, view.optionTitle(spec.Category, choice))
		}
		return strings.Join(titles, ", ")
	case wizard.KindLinks:
		parts := make([]string, 0, len(value.Links))
		for _, link := range value.Links {
			parts = append(parts, view.optionTitle(spec.Category, link.Platform)+": "+link.URL)
		}
		return strings.Join(parts, ", ")
	case wizard.KindAttachment:
		if value.Attachment == nil {
			return ""
		}
		return value.Attachment.Filename
	default:
		return value.Text
	}
}
