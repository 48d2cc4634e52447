package wizard

import (
	"context"
	"slices"
	"testing"
)

const (
	fieldFirstName Field = "first_name"
	fieldEmail     Field = "email"
	fieldCountry   Field = "country"
	fieldWebsite   Field = "website"
	fieldSkills    Field = "skills"
	fieldLinks     Field = "social_links"
	fieldAvatar    Field = "profile_picture"
)

type testDraft struct {
	values map[Field]Value
}

func newTestDraft() *testDraft {
	d := &testDraft{values: map[Field]Value{}}
	for _, f := range []Field{fieldFirstName, fieldEmail, fieldCountry, fieldWebsite, fieldSkills, fieldLinks, fieldAvatar} {
		d.values[f] = Value{}
	}
	return d
}

func (d *testDraft) Get(f Field) (Value, bool) {
	v, ok := d.values[f]
	return v.Clone(), ok
}

func (d *testDraft) Put(f Field, v Value) error {
	if _, ok := d.values[f]; !ok {
		return ErrUnknownField
	}
	d.values[f] = v.Clone()
	return nil
}

func (d *testDraft) Clone() *testDraft {
	out := &testDraft{values: make(map[Field]Value, len(d.values))}
	for f, v := range d.values {
		out.values[f] = v.Clone()
	}
	return out
}

type setDomain map[string][]string

func (d setDomain) Defines(category string) bool {
	_, ok := d[category]
	return ok
}

func (d setDomain) Contains(category string, value string) bool {
	return slices.Contains(d[category], value)
}

var testDomain = setDomain{
	"countries": {"BR", "CA", "US"},
	"skills":    {"seo", "copywriting", "ux_design"},
	"platforms": {"linkedin", "github"},
}

func testSteps() []Step {
	return []Step{
		{ID: "personal", TitleKey: "step.personal", Fields: []FieldSpec{
			{Field: fieldFirstName, Kind: KindText, Required: true},
			{Field: fieldEmail, Kind: KindEmail, Required: true},
			{Field: fieldCountry, Kind: KindChoice, Category: "countries"},
			{Field: fieldWebsite, Kind: KindURL},
		}},
		{ID: "details", TitleKey: "step.details", Fields: []FieldSpec{
			{Field: fieldSkills, Kind: KindMultiChoice, Category: "skills", Required: true},
			{Field: fieldLinks, Kind: KindLinks, Category: "platforms"},
			{Field: fieldAvatar, Kind: KindAttachment},
		}},
		{ID: "conclusion", TitleKey: "step.conclusion"},
	}
}

func newTestForm(t testing.TB) *Form[*testDraft] {
	t.Helper()
	form, err := New(testSteps(), newTestDraft(), testDomain)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return form
}

// fillAll brings the form to the last step with a valid draft.
func fillAll(t testing.TB, form *Form[*testDraft]) {
	t.Helper()
	for _, u := range []Update{
		SetText{Field: fieldFirstName, Text: "Ada"},
		SetText{Field: fieldEmail, Text: "ada@example.com"},
		SetText{Field: fieldCountry, Text: "BR"},
	} {
		if err := form.Set(u); err != nil {
			t.Fatalf("Set(%T) error = %v", u, err)
		}
	}
	if !form.Next() {
		t.Fatalf("Next() from personal = false, errors = %v", form.Errors())
	}
	if err := form.Set(ToggleChoice{Field: fieldSkills, Value: "seo"}); err != nil {
		t.Fatalf("toggle skills: %v", err)
	}
	if !form.Next() {
		t.Fatalf("Next() from details = false, errors = %v", form.Errors())
	}
}

type recordingGateway struct {
	calls  int
	drafts []*testDraft
	result Result
}

func (g *recordingGateway) Submit(_ context.Context, d *testDraft) Result {
	g.calls++
	g.drafts = append(g.drafts, d)
	return g.result
}
