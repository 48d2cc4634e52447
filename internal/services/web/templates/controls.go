package templates

import (
	"context"
	"encoding/json"
	"slices"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/onboard/internal/platform/options"
	"github.com/louisbranch/onboard/internal/services/web/routepath"
	"github.com/louisbranch/onboard/internal/services/web/wizard"
)

// Form keys used by composite controls, relative to the field name.
const (
	LinkPlatformSuffix    = ".platform"
	LinkURLSuffix         = ".url"
	NewLinkPlatformSuffix = ".new_platform"
	NewLinkURLSuffix      = ".new_url"
	ClearSuffix           = ".clear"
)

func fieldID(f wizard.Field) string {
	return "field-" + string(f)
}

// FieldControl renders the input for spec according to its kind.
func FieldControl(page PageContext, view WizardView, spec wizard.FieldSpec) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		value := view.value(spec.Field)
		errKey := view.Errors[spec.Field]
		switch spec.Kind {
		case wizard.KindMultiChoice:
			multiChoice(h, page, view, spec, value, errKey)
		case wizard.KindLinks:
			linksEditor(h, page, view, spec, value, errKey)
		default:
			class := "field"
			if errKey != "" {
				class += " has-error"
			}
			h.raw("<div")
			h.attr("class", class)
			h.attr("data-field", string(spec.Field))
			h.raw(">")
			fieldLabel(h, page, spec)
			switch spec.Kind {
			case wizard.KindChoice:
				choiceSelect(h, page, view, spec, value, errKey)
			case wizard.KindAttachment:
				attachmentPicker(h, page, spec, value, errKey)
			default:
				textInput(h, spec, value, errKey)
			}
			fieldError(h, page, spec.Field, errKey)
			h.raw("</div>")
		}
	})
}

func fieldLabel(h *htmlWriter, page PageContext, spec wizard.FieldSpec) {
	h.raw("<label")
	h.attr("for", fieldID(spec.Field))
	h.raw(">")
	h.text(page.T("field." + string(spec.Field)))
	optionalMarker(h, page, spec)
	h.raw("</label>")
}

func optionalMarker(h *htmlWriter, page PageContext, spec wizard.FieldSpec) {
	if spec.Required {
		return
	}
	h.raw(` <span class="optional">(`)
	h.text(page.T("wizard.optional"))
	h.raw(")</span>")
}

func invalidAttrs(h *htmlWriter, f wizard.Field, errKey string) {
	if errKey == "" {
		return
	}
	h.attr("aria-invalid", "true")
	h.attr("aria-describedby", fieldID(f)+"-error")
}

func fieldError(h *htmlWriter, page PageContext, f wizard.Field, errKey string) {
	if errKey == "" {
		return
	}
	h.raw(`<p class="field-error"`)
	h.attr("id", fieldID(f)+"-error")
	h.raw(">")
	h.text(page.T(errKey))
	h.raw("</p>")
}

func textInput(h *htmlWriter, spec wizard.FieldSpec, value wizard.Value, errKey string) {
	if spec.Multiline {
		h.raw("<textarea")
		h.attr("id", fieldID(spec.Field))
		h.attr("name", string(spec.Field))
		h.attr("rows", "5")
		h.flag("required", spec.Required)
		invalidAttrs(h, spec.Field, errKey)
		h.raw(">")
		h.text(value.Text)
		h.raw("</textarea>")
		return
	}
	inputType := "text"
	switch spec.Kind {
	case wizard.KindEmail:
		inputType = "email"
	case wizard.KindURL:
		inputType = "url"
	}
	h.raw("<input")
	h.attr("type", inputType)
	h.attr("id", fieldID(spec.Field))
	h.attr("name", string(spec.Field))
	h.attr("value", value.Text)
	h.flag("required", spec.Required)
	invalidAttrs(h, spec.Field, errKey)
	h.raw(">")
}

func choiceSelect(h *htmlWriter, page PageContext, view WizardView, spec wizard.FieldSpec, value wizard.Value, errKey string) {
	h.raw("<select")
	h.attr("id", fieldID(spec.Field))
	h.attr("name", string(spec.Field))
	h.flag("required", spec.Required)
	invalidAttrs(h, spec.Field, errKey)
	h.raw(`><option value="">`)
	h.text(page.T("control.select"))
	h.raw("</option>")
	for _, option := range view.options(spec.Category) {
		h.raw("<option")
		h.attr("value", option.Value)
		h.flag("selected", option.Value == value.Text)
		h.raw(">")
		h.text(option.Label)
		h.raw("</option>")
	}
	h.raw("</select>")
}

func multiChoice(h *htmlWriter, page PageContext, view WizardView, spec wizard.FieldSpec, value wizard.Value, errKey string) {
	class := "field chips"
	if errKey != "" {
		class += " has-error"
	}
	h.raw("<fieldset")
	h.attr("class", class)
	h.attr("data-field", string(spec.Field))
	h.attr("id", fieldID(spec.Field))
	invalidAttrs(h, spec.Field, errKey)
	h.raw("><legend>")
	h.text(page.T("field." + string(spec.Field)))
	optionalMarker(h, page, spec)
	h.raw("</legend>")
	for _, option := range view.options(spec.Category) {
		checked := slices.Contains(value.Choices, option.Value)
		class := "chip"
		if checked {
			class += " is-selected"
		}
		vals, _ := json.Marshal(map[string]string{"field": string(spec.Field), "value": option.Value})
		h.raw("<label")
		h.attr("class", class)
		h.raw(`><input type="checkbox"`)
		h.attr("name", string(spec.Field))
		h.attr("value", option.Value)
		h.flag("checked", checked)
		h.attr("hx-post", routepath.OnboardingToggle(view.Kind))
		h.attr("hx-vals", string(vals))
		h.attr("hx-params", "field,value")
		h.attr("hx-trigger", "change")
		h.attr("hx-target", "#"+WizardID)
		h.attr("hx-swap", "outerHTML")
		h.raw("> ")
		h.text(option.Label)
		h.raw("</label>")
	}
	fieldError(h, page, spec.Field, errKey)
	h.raw("</fieldset>")
}

func linksEditor(h *htmlWriter, page PageContext, view WizardView, spec wizard.FieldSpec, value wizard.Value, errKey string) {
	class := "field links"
	if errKey != "" {
		class += " has-error"
	}
	name := string(spec.Field)
	linksAction := routepath.OnboardingLinks(view.Kind)
	platforms := view.options(spec.Category)

	h.raw("<fieldset")
	h.attr("class", class)
	h.attr("data-field", name)
	h.attr("id", fieldID(spec.Field))
	invalidAttrs(h, spec.Field, errKey)
	h.raw("><legend>")
	h.text(page.T("field." + name))
	optionalMarker(h, page, spec)
	h.raw("</legend>")

	if len(value.Links) == 0 {
		h.raw(`<p class="links-empty">`)
		h.text(page.T("control.links.empty"))
		h.raw("</p>")
	}
	for i, link := range value.Links {
		h.raw(`<div class="link-row">`)
		platformSelect(h, page, name+LinkPlatformSuffix, platforms, link.Platform)
		urlInput(h, page, name+LinkURLSuffix, link.URL)
		vals, _ := json.Marshal(map[string]string{"remove": strconv.Itoa(i)})
		h.raw(`<button type="submit" class="button secondary" name="remove" formnovalidate`)
		h.attr("value", strconv.Itoa(i))
		h.attr("formaction", linksAction)
		h.attr("hx-post", linksAction)
		h.attr("hx-vals", string(vals))
		h.raw(">")
		h.text(page.T("control.links.remove"))
		h.raw("</button></div>")
	}

	h.raw(`<div class="link-row link-new">`)
	platformSelect(h, page, name+NewLinkPlatformSuffix, platforms, "")
	urlInput(h, page, name+NewLinkURLSuffix, "")
	h.raw(`<button type="submit" class="button secondary" name="add" value="1" formnovalidate`)
	h.attr("formaction", linksAction)
	h.attr("hx-post", linksAction)
	h.attr("hx-vals", `{"add":"1"}`)
	h.raw(">")
	h.text(page.T("control.links.add"))
	h.raw("</button></div>")

	fieldError(h, page, spec.Field, errKey)
	h.raw("</fieldset>")
}

func platformSelect(h *htmlWriter, page PageContext, name string, platforms []options.SelectOption, selected string) {
	h.raw("<select")
	h.attr("name", name)
	h.attr("aria-label", page.T("control.links.platform"))
	h.raw(`><option value="">`)
	h.text(page.T("control.links.platform"))
	h.raw("</option>")
	for _, option := range platforms {
		h.raw("<option")
		h.attr("value", option.Value)
		h.flag("selected", option.Value == selected)
		h.raw(">")
		h.text(option.Label)
		h.raw("</option>")
	}
	h.raw("</select>")
}

func urlInput(h *htmlWriter, page PageContext, name, value string) {
	h.raw(`<input type="url"`)
	h.attr("name", name)
	h.attr("value", value)
	h.attr("placeholder", "https://")
	h.attr("aria-label", page.T("control.links.url"))
	h.raw(">")
}

func attachmentPicker(h *htmlWriter, page PageContext, spec wizard.FieldSpec, value wizard.Value, errKey string) {
	h.raw(`<input type="file" accept="image/*"`)
	h.attr("id", fieldID(spec.Field))
	h.attr("name", string(spec.Field))
	invalidAttrs(h, spec.Field, errKey)
	h.raw(">")
	if value.Attachment == nil {
		return
	}
	h.raw(`<p class="attachment-current">`)
	h.text(page.T("control.attachment.current", value.Attachment.Filename))
	h.raw(`</p><label class="checkbox"><input type="checkbox" value="1"`)
	h.attr("name", string(spec.Field)+ClearSuffix)
	h.raw("> ")
	h.text(page.T("control.attachment.clear"))
	h.raw("</label>")
}
