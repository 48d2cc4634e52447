package options

// SelectOption is the {value, label} shape consumed by select controls.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ToSelectFormat maps entries to select options, preserving order.
func ToSelectFormat(entries []Option) []SelectOption {
	out := make([]SelectOption, len(entries))
	for i, entry := range entries {
		out[i] = SelectOption{Value: entry.Value, Label: entry.Title}
	}
	return out
}

// ToOnboardingFormat returns entries in their original {title, value} shape.
// The result is a copy so callers cannot alias catalog storage.
func ToOnboardingFormat(entries []Option) []Option {
	out := make([]Option, len(entries))
	copy(out, entries)
	return out
}
