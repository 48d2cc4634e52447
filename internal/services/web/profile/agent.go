package profile

import (
	"fmt"

	"github.com/louisbranch/onboard/internal/platform/options"
	"github.com/louisbranch/onboard/internal/services/web/wizard"
)

// AgentProfile is the draft built by the agent wizard.
type AgentProfile struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Country   string
	Bio       string

	Skills          []string
	Industries      []string
	RateBand        string
	Availability    string
	ExperienceLevel string
	SocialLinks     []wizard.Link
	ProfilePicture  *wizard.Attachment
	BannerImage     *wizard.Attachment
}

var agentFields = []wizard.Field{
	FieldFirstName, FieldLastName, FieldEmail, FieldPhone, FieldCountry, FieldBio,
	FieldSkills, FieldIndustries, FieldRateBand, FieldAvailability, FieldExperienceLevel,
	FieldSocialLinks, FieldProfilePicture, FieldBannerImage,
}

// AgentSteps returns personal details, profile details and conclusion.
func AgentSteps() []wizard.Step {
	return []wizard.Step{
		{ID: StepPersonal, TitleKey: "step.personal", Fields: []wizard.FieldSpec{
			{Field: FieldFirstName, Kind: wizard.KindText, Required: true},
			{Field: FieldLastName, Kind: wizard.KindText, Required: true},
			{Field: FieldEmail, Kind: wizard.KindEmail, Required: true},
			{Field: FieldPhone, Kind: wizard.KindText},
			{Field: FieldCountry, Kind: wizard.KindChoice, Category: string(options.Countries), Required: true},
			{Field: FieldBio, Kind: wizard.KindText, Multiline: true},
		}},
		{ID: StepDetails, TitleKey: "step.agent_details", Fields: []wizard.FieldSpec{
			{Field: FieldSkills, Kind: wizard.KindMultiChoice, Category: string(options.Skills), Required: true},
			{Field: FieldIndustries, Kind: wizard.KindMultiChoice, Category: string(options.Industries), Required: true},
			{Field: FieldRateBand, Kind: wizard.KindChoice, Category: string(options.RateBands), Required: true},
			{Field: FieldAvailability, Kind: wizard.KindChoice, Category: string(options.Availability), Required: true},
			{Field: FieldExperienceLevel, Kind: wizard.KindChoice, Category: string(options.ExperienceLevels), Required: true},
			{Field: FieldSocialLinks, Kind: wizard.KindLinks, Category: string(options.SocialPlatforms)},
			{Field: FieldProfilePicture, Kind: wizard.KindAttachment},
			{Field: FieldBannerImage, Kind: wizard.KindAttachment},
		}},
		{ID: StepConclusion, TitleKey: "step.conclusion"},
	}
}

// NewAgentForm starts an agent wizard with an empty draft.
func NewAgentForm(domain wizard.Domain) (*wizard.Form[*AgentProfile], error) {
	return wizard.New(AgentSteps(), &AgentProfile{}, domain)
}

func (p *AgentProfile) slot(f wizard.Field) (slot, bool) {
	switch f {
	case FieldFirstName:
		return slot{text: &p.FirstName}, true
	case FieldLastName:
		return slot{text: &p.LastName}, true
	case FieldEmail:
		return slot{text: &p.Email}, true
	case FieldPhone:
		return slot{text: &p.Phone}, true
	case FieldCountry:
		return slot{text: &p.Country}, true
	case FieldBio:
		return slot{text: &p.Bio}, true
	case FieldSkills:
		return slot{list: &p.Skills}, true
	case FieldIndustries:
		return slot{list: &p.Industries}, true
	case FieldRateBand:
		return slot{text: &p.RateBand}, true
	case FieldAvailability:
		return slot{text: &p.Availability}, true
	case FieldExperienceLevel:
		return slot{text: &p.ExperienceLevel}, true
	case FieldSocialLinks:
		return slot{links: &p.SocialLinks}, true
	case FieldProfilePicture:
		return slot{file: &p.ProfilePicture}, true
	case FieldBannerImage:
		return slot{file: &p.BannerImage}, true
	default:
		return slot{}, false
	}
}

// Get returns the value of f.
func (p *AgentProfile) Get(f wizard.Field) (wizard.Value, bool) {
	s, ok := p.slot(f)
	if !ok {
		return wizard.Value{}, false
	}
	return s.get(), true
}

// Put stores v under f.
func (p *AgentProfile) Put(f wizard.Field, v wizard.Value) error {
	s, ok := p.slot(f)
	if !ok {
		return fmt.Errorf("%w: agent profile has no %q", wizard.ErrUnknownField, f)
	}
	s.put(v)
	return nil
}

// Clone returns a deep copy.
func (p *AgentProfile) Clone() *AgentProfile {
	out := &AgentProfile{}
	for _, f := range agentFields {
		src, _ := p.slot(f)
		dst, _ := out.slot(f)
		dst.put(src.get())
	}
	return out
}

// DisplayName joins first and last name.
func (p *AgentProfile) DisplayName() string {
	return joinName(p.FirstName, p.LastName)
}
