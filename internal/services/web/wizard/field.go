package wizard

import "slices"

// Field names one ProfileDraft field. Each draft variant declares its own
// closed set of fields.
type Field string

// FieldKind selects the value shape and validation rules of a field.
type FieldKind uint8

const (
	KindText FieldKind = iota + 1
	KindEmail
	KindURL
	KindChoice
	KindMultiChoice
	KindLinks
	KindAttachment
)

func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEmail:
		return "email"
	case KindURL:
		return "url"
	case KindChoice:
		return "choice"
	case KindMultiChoice:
		return "multi-choice"
	case KindLinks:
		return "links"
	case KindAttachment:
		return "attachment"
	default:
		return "unknown"
	}
}

// FieldSpec declares one field owned by a step.
//
// Category names the option list that bounds an enumerated field. For links
// it bounds the platform of each link. Multiline only affects rendering.
type FieldSpec struct {
	Field     Field
	Kind      FieldKind
	Category  string
	Required  bool
	Multiline bool
}

// Step is one screen of the wizard.
type Step struct {
	ID       string
	TitleKey string
	Fields   []FieldSpec
}

// Domain answers whether value belongs to an option category.
type Domain interface {
	Defines(category string) bool
	Contains(category string, value string) bool
}

// Link is one social profile entry.
type Link struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Attachment is the single file held by an attachment slot.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size reports the attachment size in bytes.
func (a *Attachment) Size() int {
	if a == nil {
		return 0
	}
	return len(a.Data)
}

// Value carries a field value. Only the member matching the field kind is
// meaningful: Text for text, email, url and choice; Choices for
// multi-choice; Links for links; Attachment for attachment.
type Value struct {
	Text       string
	Choices    []string
	Links      []Link
	Attachment *Attachment
}

// Clone returns a deep copy.
func (v Value) Clone() Value {
	out := Value{
		Text:    v.Text,
		Choices: slices.Clone(v.Choices),
		Links:   slices.Clone(v.Links),
	}
	if v.Attachment != nil {
		a := *v.Attachment
		a.Data = slices.Clone(v.Attachment.Data)
		out.Attachment = &a
	}
	return out
}

// Empty reports whether the value counts as missing for a field of kind k.
func (v Value) Empty(k FieldKind) bool {
	switch k {
	case KindMultiChoice:
		return len(v.Choices) == 0
	case KindLinks:
		return len(v.Links) == 0
	case KindAttachment:
		return v.Attachment == nil
	default:
		return v.Text == ""
	}
}
