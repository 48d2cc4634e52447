package wizard

import (
	"fmt"
	"slices"
)

// Update is a typed field mutation. The set of updates is closed: SetText,
// ToggleChoice, SetChoices, SetLinks, AddLink, RemoveLink and SetAttachment.
type Update interface {
	Target() Field
	accepts(FieldKind) bool
	apply(Value) (Value, error)
}

// SetText replaces a text, email, url or single-choice value.
type SetText struct {
	Field Field
	Text  string
}

func (u SetText) Target() Field { return u.Field }

func (u SetText) accepts(k FieldKind) bool {
	return k == KindText || k == KindEmail || k == KindURL || k == KindChoice
}

func (u SetText) apply(v Value) (Value, error) {
	v.Text = u.Text
	return v, nil
}

// ToggleChoice adds Value to a multi-choice selection, or removes it when it
// is already selected. New values are appended in insertion order.
type ToggleChoice struct {
	Field Field
	Value string
}

func (u ToggleChoice) Target() Field { return u.Field }

func (u ToggleChoice) accepts(k FieldKind) bool { return k == KindMultiChoice }

func (u ToggleChoice) apply(v Value) (Value, error) {
	if idx := slices.Index(v.Choices, u.Value); idx >= 0 {
		v.Choices = slices.Delete(v.Choices, idx, idx+1)
		return v, nil
	}
	v.Choices = append(v.Choices, u.Value)
	return v, nil
}

// SetChoices replaces a whole multi-choice selection, as posted by a form.
type SetChoices struct {
	Field  Field
	Values []string
}

func (u SetChoices) Target() Field { return u.Field }

func (u SetChoices) accepts(k FieldKind) bool { return k == KindMultiChoice }

func (u SetChoices) apply(v Value) (Value, error) {
	v.Choices = slices.Clone(u.Values)
	return v, nil
}

// SetLinks replaces every link.
type SetLinks struct {
	Field Field
	Links []Link
}

func (u SetLinks) Target() Field { return u.Field }

func (u SetLinks) accepts(k FieldKind) bool { return k == KindLinks }

func (u SetLinks) apply(v Value) (Value, error) {
	v.Links = slices.Clone(u.Links)
	return v, nil
}

// AddLink appends one link.
type AddLink struct {
	Field Field
	Link  Link
}

func (u AddLink) Target() Field { return u.Field }

func (u AddLink) accepts(k FieldKind) bool { return k == KindLinks }

func (u AddLink) apply(v Value) (Value, error) {
	v.Links = append(v.Links, u.Link)
	return v, nil
}

// RemoveLink drops the link at Index.
type RemoveLink struct {
	Field Field
	Index int
}

func (u RemoveLink) Target() Field { return u.Field }

func (u RemoveLink) accepts(k FieldKind) bool { return k == KindLinks }

func (u RemoveLink) apply(v Value) (Value, error) {
	if u.Index < 0 || u.Index >= len(v.Links) {
		return v, fmt.Errorf("%w: link %d of %d", ErrInvalidUpdate, u.Index, len(v.Links))
	}
	v.Links = slices.Delete(v.Links, u.Index, u.Index+1)
	return v, nil
}

// SetAttachment fills an attachment slot, replacing any previous file. A nil
// File clears the slot.
type SetAttachment struct {
	Field Field
	File  *Attachment
}

func (u SetAttachment) Target() Field { return u.Field }

func (u SetAttachment) accepts(k FieldKind) bool { return k == KindAttachment }

func (u SetAttachment) apply(v Value) (Value, error) {
	if u.File == nil {
		v.Attachment = nil
		return v, nil
	}
	file := *u.File
	file.Data = slices.Clone(u.File.Data)
	v.Attachment = &file
	return v, nil
}
