package wizard

import (
	"maps"
	"net/mail"
	"net/url"
	"slices"
	"strings"
)

// Localization keys recorded in ValidationErrors.
const (
	KeyRequired    = "error.field.required"
	KeyEmail       = "error.field.email"
	KeyURL         = "error.field.url"
	KeyOutOfDomain = "error.field.choice"
	KeyIncomplete  = "submit.incomplete"
)

// ValidationErrors maps a field to the localization key of its error.
type ValidationErrors map[Field]string

// Strings converts the errors to a plain string map for transport.
func (e ValidationErrors) Strings() map[string]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string]string, len(e))
	for field, key := range e {
		out[string(field)] = key
	}
	return out
}

func (e ValidationErrors) clone() ValidationErrors {
	out := maps.Clone(e)
	if out == nil {
		out = ValidationErrors{}
	}
	return out
}

// normalize trims user input and drops blank entries.
func normalize(kind FieldKind, v Value) Value {
	switch kind {
	case KindMultiChoice:
		out := make([]string, 0, len(v.Choices))
		for _, choice := range v.Choices {
			choice = strings.TrimSpace(choice)
			if choice == "" || slices.Contains(out, choice) {
				continue
			}
			out = append(out, choice)
		}
		v.Choices = out
	case KindLinks:
		out := make([]Link, 0, len(v.Links))
		for _, link := range v.Links {
			link.Platform = strings.TrimSpace(link.Platform)
			link.URL = strings.TrimSpace(link.URL)
			if link.Platform == "" && link.URL == "" {
				continue
			}
			out = append(out, link)
		}
		v.Links = out
	case KindAttachment:
	default:
		v.Text = strings.TrimSpace(v.Text)
	}
	return v
}

// check returns the error key for v, or "" when v is acceptable.
func check(spec FieldSpec, v Value, domain Domain) string {
	if spec.Required && v.Empty(spec.Kind) {
		return KeyRequired
	}
	inDomain := func(value string) bool {
		return spec.Category == "" || (domain != nil && domain.Contains(spec.Category, value))
	}
	switch spec.Kind {
	case KindEmail:
		if v.Text != "" && !validEmail(v.Text) {
			return KeyEmail
		}
	case KindURL:
		if v.Text != "" && !validURL(v.Text) {
			return KeyURL
		}
	case KindChoice:
		if v.Text != "" && !inDomain(v.Text) {
			return KeyOutOfDomain
		}
	case KindMultiChoice:
		for _, choice := range v.Choices {
			if !inDomain(choice) {
				return KeyOutOfDomain
			}
		}
	case KindLinks:
		for _, link := range v.Links {
			if !inDomain(link.Platform) {
				return KeyOutOfDomain
			}
		}
		for _, link := range v.Links {
			if !validURL(link.URL) {
				return KeyURL
			}
		}
	}
	return ""
}

func validEmail(raw string) bool {
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == raw && strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".")
}

func validURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
