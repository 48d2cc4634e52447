// Package options holds the static option lists that drive enumerated
// onboarding fields and adapts them to the shapes UI controls consume.
package options

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category names one option list.
type Category string

const (
	Skills           Category = "skills"
	Industries       Category = "industries"
	RateBands        Category = "rate_bands"
	BudgetBands      Category = "budget_bands"
	Availability     Category = "availability"
	ExperienceLevels Category = "experience_levels"
	Timelines        Category = "timelines"
	Countries        Category = "countries"
	SocialPlatforms  Category = "social_platforms"
)

// ErrUnknownCategory reports a lookup against a category the catalog does not define.
var ErrUnknownCategory = errors.New("option category is unknown")

// Option is one selectable catalog entry.
type Option struct {
	Title string `yaml:"title" json:"title"`
	Value string `yaml:"value" json:"value"`
}

// Catalog is an immutable set of ordered option lists keyed by category.
type Catalog struct {
	lists  map[Category][]Option
	values map[Category]map[string]int
}

//go:embed catalog.yaml
var embeddedCatalog []byte

var defaultCatalog = mustLoadEmbedded()

// Default returns the process-wide embedded catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Load parses a YAML document mapping category names to option lists.
func Load(data []byte) (*Catalog, error) {
	raw := map[string][]Option{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode option catalog: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("option catalog is empty")
	}

	c := &Catalog{
		lists:  make(map[Category][]Option, len(raw)),
		values: make(map[Category]map[string]int, len(raw)),
	}
	for name, entries := range raw {
		category := Category(strings.TrimSpace(name))
		if category == "" {
			return nil, fmt.Errorf("option catalog: category name cannot be blank")
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("option catalog: category %q has no options", category)
		}
		list := make([]Option, 0, len(entries))
		index := make(map[string]int, len(entries))
		for i, entry := range entries {
			entry.Title = strings.TrimSpace(entry.Title)
			entry.Value = strings.TrimSpace(entry.Value)
			if entry.Value == "" {
				return nil, fmt.Errorf("option catalog: %s[%d] value is required", category, i)
			}
			if entry.Title == "" {
				return nil, fmt.Errorf("option catalog: %s[%d] title is required", category, i)
			}
			if _, dup := index[entry.Value]; dup {
				return nil, fmt.Errorf("option catalog: %s has duplicate value %q", category, entry.Value)
			}
			index[entry.Value] = len(list)
			list = append(list, entry)
		}
		c.lists[category] = list
		c.values[category] = index
	}
	return c, nil
}

// LoadFromFS loads a catalog document from fsys.
func LoadFromFS(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read option catalog %s: %w", name, err)
	}
	return Load(data)
}

// Categories returns the defined categories in sorted order.
func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}
	out := make([]Category, 0, len(c.lists))
	for category := range c.lists {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Options returns a copy of the ordered options for category.
func (c *Catalog) Options(category Category) ([]Option, error) {
	if c == nil {
		return nil, ErrUnknownCategory
	}
	list, ok := c.lists[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return append([]Option(nil), list...), nil
}

// Defines reports whether the catalog has a list for category.
func (c *Catalog) Defines(category string) bool {
	if c == nil {
		return false
	}
	_, ok := c.lists[Category(category)]
	return ok
}

// Contains reports whether value belongs to category's value domain.
func (c *Catalog) Contains(category string, value string) bool {
	if c == nil {
		return false
	}
	index, ok := c.values[Category(category)]
	if !ok {
		return false
	}
	_, ok = index[value]
	return ok
}

// Title returns the display title for value in category.
func (c *Catalog) Title(category string, value string) (string, bool) {
	if c == nil {
		return "", false
	}
	index, ok := c.values[Category(category)]
	if !ok {
		return "", false
	}
	pos, ok := index[value]
	if !ok {
		return "", false
	}
	return c.lists[Category(category)][pos].Title, true
}

func mustLoadEmbedded() *Catalog {
	c, err := Load(embeddedCatalog)
	if err != nil {
		panic(err)
	}
	return c
}
