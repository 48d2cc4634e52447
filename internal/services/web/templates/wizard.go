package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/onboard/internal/platform/options"
	webi18n "github.com/louisbranch/onboard/internal/services/web/i18n"
	"github.com/louisbranch/onboard/internal/services/web/routepath"
	"github.com/louisbranch/onboard/internal/services/web/wizard"
)

// WizardID is the element id HTMX swaps on every wizard interaction.
const WizardID = "wizard"

// WizardView is the render-ready state of one wizard session.
type WizardView struct {
	Kind       string
	HeadingKey string
	Steps      []wizard.Step
	Index      int
	Value      func(wizard.Field) wizard.Value
	Errors     wizard.ValidationErrors
	Result     *wizard.Result
	InFlight   bool
	Submitted  bool
	Catalog    *options.Catalog
}

func (v WizardView) step() wizard.Step {
	if v.Index < 0 || v.Index >= len(v.Steps) {
		return wizard.Step{}
	}
	return v.Steps[v.Index]
}

func (v WizardView) isLast() bool {
	return v.Index == len(v.Steps)-1
}

func (v WizardView) value(f wizard.Field) wizard.Value {
	if v.Value == nil {
		return wizard.Value{}
	}
	return v.Value(f)
}

func (v WizardView) options(category string) []options.SelectOption {
	if v.Catalog == nil || category == "" {
		return nil
	}
	list, err := v.Catalog.Options(options.Category(category))
	if err != nil {
		return nil
	}
	return options.ToSelectFormat(list)
}

func (v WizardView) optionTitle(category, value string) string {
	if v.Catalog != nil {
		if title, ok := v.Catalog.Title(category, value); ok {
			return title
		}
	}
	return value
}

// htmxTarget sets the HTMX attributes shared by wizard forms.
func (v WizardView) htmxTarget(h *htmlWriter, action string) {
	h.attr("hx-post", action)
	h.attr("hx-target", "#"+WizardID)
	h.attr("hx-swap", "outerHTML")
}

// Wizard renders the wizard for the current step.
func Wizard(page PageContext, view WizardView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<section")
		h.attr("id", WizardID)
		h.attr("class", "wizard")
		h.attr("data-kind", view.Kind)
		h.attr("data-step", view.step().ID)
		h.raw("><header class=\"wizard-header\"><h1>")
		h.text(page.T(view.HeadingKey))
		h.raw("</h1>")
		h.render(ctx, Progress(page, view))
		h.raw("</header>")

		if view.Submitted && view.Result != nil && view.Result.Success {
			h.render(ctx, Done(page, view))
			h.raw("</section>")
			return
		}
		if view.Result != nil {
			h.render(ctx, ResultNotice(page, *view.Result))
		}

		step := view.step()
		if view.isLast() {
			h.render(ctx, Conclusion(page, view))
		} else {
			h.render(ctx, StepForm(page, view, step))
		}

		h.raw(`<form class="wizard-reset" method="post"`)
		h.attr("action", routepath.OnboardingReset(view.Kind))
		h.raw(`><button type="submit" class="link-button">`)
		h.text(page.T("wizard.reset"))
		h.raw("</button></form></section>")
	})
}

// Progress renders the step indicator.
func Progress(page PageContext, view WizardView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<p class="wizard-progress">`)
		h.text(page.T("wizard.progress", view.Index+1, len(view.Steps)))
		h.raw(`</p><ol class="wizard-steps">`)
		for i, step := range view.Steps {
			class := "wizard-step"
			switch {
			case i < view.Index:
				class += " is-done"
			case i == view.Index:
				class += " is-active"
			}
			h.raw("<li")
			h.attr("class", class)
			if i == view.Index {
				h.attr("aria-current", "step")
			}
			h.raw(">")
			h.text(page.T(step.TitleKey))
			h.raw("</li>")
		}
		h.raw("</ol>")
	})
}

// StepForm renders the inputs of a data-entry step with its navigation.
func StepForm(page PageContext, view WizardView, step wizard.Step) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<form class="wizard-form" method="post" enctype="multipart/form-data"`)
		h.attr("action", routepath.OnboardingStep(view.Kind))
		view.htmxTarget(h, routepath.OnboardingStep(view.Kind))
		h.attr("hx-encoding", "multipart/form-data")
		h.raw("><h2>")
		h.text(page.T(step.TitleKey))
		h.raw("</h2>")
		hiddenInput(h, "step", strconv.Itoa(view.Index))
		for _, spec := range step.Fields {
			h.render(ctx, FieldControl(page, view, spec))
		}
		h.raw(`<div class="wizard-actions">`)
		if view.Index > 0 {
			actionButton(h, "prev", page.T("wizard.prev"), "secondary", false)
		}
		actionButton(h, "next", page.T("wizard.next"), "primary", false)
		h.raw("</div></form>")
	})
}

// Conclusion renders the review summary and the submit control.
func Conclusion(page PageContext, view WizardView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="wizard-conclusion"><h2>`)
		h.text(page.T(view.step().TitleKey))
		h.raw("</h2>")
		h.render(ctx, Review(page, view))

		h.raw(`<form class="wizard-nav" method="post"`)
		h.attr("action", routepath.OnboardingStep(view.Kind))
		view.htmxTarget(h, routepath.OnboardingStep(view.Kind))
		h.raw(">")
		hiddenInput(h, "step", strconv.Itoa(view.Index))
		actionButton(h, "prev", page.T("wizard.prev"), "secondary", view.InFlight)
		actionButton(h, "first", page.T("wizard.first"), "secondary", view.InFlight)
		h.raw("</form>")

		h.raw(`<form class="wizard-submit" method="post"`)
		h.attr("action", routepath.OnboardingSubmit(view.Kind))
		view.htmxTarget(h, routepath.OnboardingSubmit(view.Kind))
		h.attr("hx-disabled-elt", "find button")
		h.raw(`><button type="submit" class="button primary"`)
		h.flag("disabled", view.InFlight)
		h.raw(">")
		if view.InFlight {
			h.text(page.T("wizard.submitting"))
		} else {
			h.text(page.T("wizard.submit"))
		}
		h.raw("</button></form></div>")
	})
}

// ResultNotice renders the outcome of the last submission attempt.
func ResultNotice(page PageContext, result wizard.Result) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		if result.Message == "" {
			return
		}
		class, role := "wizard-result is-error", "alert"
		if result.Success {
			class, role = "wizard-result is-success", "status"
		}
		h.raw("<div")
		h.attr("class", class)
		h.attr("role", role)
		h.raw(">")
		h.text(webi18n.Text(page.Loc, result.Message))
		h.raw("</div>")
	})
}

// Done renders the confirmation shown after a successful submission.
func Done(page PageContext, view WizardView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="wizard-done">`)
		if view.Result != nil {
			h.render(ctx, ResultNotice(page, *view.Result))
		}
		h.raw("<h2>")
		h.text(page.T("wizard.done.heading"))
		h.raw("</h2>")
		if view.Result != nil && view.Result.ID != "" {
			h.raw("<p>")
			h.text(page.T("wizard.done.body", view.Result.ID))
			h.raw("</p>")
		}
		h.raw(`<a class="button"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(page.T("wizard.done.home"))
		h.raw("</a></div>")
	})
}

func hiddenInput(h *htmlWriter, name, value string) {
	h.raw(`<input type="hidden"`)
	h.attr("name", name)
	h.attr("value", value)
	h.raw(">")
}

func actionButton(h *htmlWriter, action, label, variant string, disabled bool) {
	h.raw(`<button type="submit" name="action"`)
	h.attr("value", action)
	h.attr("class", "button "+variant)
	h.flag("disabled", disabled)
	h.raw(">")
	h.text(label)
	h.raw("</button>")
}
