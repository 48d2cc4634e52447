package profile

import "github.com/louisbranch/onboard/internal/services/web/wizard"

// Field names shared by both variants or owned by one of them.
const (
	FieldFirstName       wizard.Field = "first_name"
	FieldLastName        wizard.Field = "last_name"
	FieldEmail           wizard.Field = "email"
	FieldPhone           wizard.Field = "phone"
	FieldCountry         wizard.Field = "country"
	FieldBio             wizard.Field = "bio"
	FieldSkills          wizard.Field = "skills"
	FieldIndustries      wizard.Field = "industries"
	FieldRateBand        wizard.Field = "rate_band"
	FieldAvailability    wizard.Field = "availability"
	FieldExperienceLevel wizard.Field = "experience_level"
	FieldCompanyName     wizard.Field = "company_name"
	FieldIndustry        wizard.Field = "industry"
	FieldServicesNeeded  wizard.Field = "services_needed"
	FieldBudgetBand      wizard.Field = "budget_band"
	FieldTimeline        wizard.Field = "timeline"
	FieldProjectSummary  wizard.Field = "project_summary"
	FieldSocialLinks     wizard.Field = "social_links"
	FieldProfilePicture  wizard.Field = "profile_picture"
	FieldBannerImage     wizard.Field = "banner_image"
)

// Step identifiers.
const (
	StepPersonal   = "personal"
	StepDetails    = "details"
	StepConclusion = "conclusion"
)

// slot points at the storage of one draft field.
type slot struct {
	text  *string
	list  *[]string
	links *[]wizard.Link
	file  **wizard.Attachment
}

func (s slot) get() wizard.Value {
	var v wizard.Value
	switch {
	case s.text != nil:
		v.Text = *s.text
	case s.list != nil:
		v.Choices = *s.list
	case s.links != nil:
		v.Links = *s.links
	case s.file != nil:
		v.Attachment = *s.file
	}
	return v.Clone()
}

func (s slot) put(v wizard.Value) {
	v = v.Clone()
	switch {
	case s.text != nil:
		*s.text = v.Text
	case s.list != nil:
		*s.list = v.Choices
	case s.links != nil:
		*s.links = v.Links
	case s.file != nil:
		*s.file = v.Attachment
	}
}
