package profile

import (
	"fmt"

	"github.com/louisbranch/onboard/internal/platform/options"
	"github.com/louisbranch/onboard/internal/services/web/wizard"
)

// ClientProfile is the draft built by the client wizard.
type ClientProfile struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	CompanyName string
	Country     string

	Industry       string
	ServicesNeeded []string
	BudgetBand     string
	Timeline       string
	ProjectSummary string
	SocialLinks    []wizard.Link
	ProfilePicture *wizard.Attachment
	BannerImage    *wizard.Attachment
}

var clientFields = []wizard.Field{
	FieldFirstName, FieldLastName, FieldEmail, FieldPhone, FieldCompanyName, FieldCountry,
	FieldIndustry, FieldServicesNeeded, FieldBudgetBand, FieldTimeline, FieldProjectSummary,
	FieldSocialLinks, FieldProfilePicture, FieldBannerImage,
}

// ClientSteps returns personal details, project details and conclusion.
func ClientSteps() []wizard.Step {
	return []wizard.Step{
		{ID: StepPersonal, TitleKey: "step.personal", Fields: []wizard.FieldSpec{
			{Field: FieldFirstName, Kind: wizard.KindText, Required: true},
			{Field: FieldLastName, Kind: wizard.KindText, Required: true},
			{Field: FieldEmail, Kind: wizard.KindEmail, Required: true},
			{Field: FieldPhone, Kind: wizard.KindText},
			{Field: FieldCompanyName, Kind: wizard.KindText, Required: true},
			{Field: FieldCountry, Kind: wizard.KindChoice, Category: string(options.Countries), Required: true},
		}},
		{ID: StepDetails, TitleKey: "step.client_details", Fields: []wizard.FieldSpec{
			{Field: FieldIndustry, Kind: wizard.KindChoice, Category: string(options.Industries), Required: true},
			{Field: FieldServicesNeeded, Kind: wizard.KindMultiChoice, Category: string(options.Skills), Required: true},
			{Field: FieldBudgetBand, Kind: wizard.KindChoice, Category: string(options.BudgetBands), Required: true},
			{Field: FieldTimeline, Kind: wizard.KindChoice, Category: string(options.Timelines), Required: true},
			{Field: FieldProjectSummary, Kind: wizard.KindText, Required: true, Multiline: true},
			{Field: FieldSocialLinks, Kind: wizard.KindLinks, Category: string(options.SocialPlatforms)},
			{Field: FieldProfilePicture, Kind: wizard.KindAttachment},
			{Field: FieldBannerImage, Kind: wizard.KindAttachment},
		}},
		{ID: StepConclusion, TitleKey: "step.conclusion"},
	}
}

// NewClientForm starts a client wizard with an empty draft.
func NewClientForm(domain wizard.Domain) (*wizard.Form[*ClientProfile], error) {
	return wizard.New(ClientSteps(), &ClientProfile{}, domain)
}

func (p *ClientProfile) slot(f wizard.Field) (slot, bool) {
	switch f {
	case FieldFirstName:
		return slot{text: &p.FirstName}, true
	case FieldLastName:
		return slot{text: &p.LastName}, true
	case FieldEmail:
		return slot{text: &p.Email}, true
	case FieldPhone:
		return slot{text: &p.Phone}, true
	case FieldCompanyName:
		return slot{text: &p.CompanyName}, true
	case FieldCountry:
		return slot{text: &p.Country}, true
	case FieldIndustry:
		return slot{text: &p.Industry}, true
	case FieldServicesNeeded:
		return slot{list: &p.ServicesNeeded}, true
	case FieldBudgetBand:
		return slot{text: &p.BudgetBand}, true
	case FieldTimeline:
		return slot{text: &p.Timeline}, true
	case FieldProjectSummary:
		return slot{text: &p.ProjectSummary}, true
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
func (p *ClientProfile) Get(f wizard.Field) (wizard.Value, bool) {
	s, ok := p.slot(f)
	if !ok {
		return wizard.Value{}, false
	}
	return s.get(), true
}

// Put stores v under f.
func (p *ClientProfile) Put(f wizard.Field, v wizard.Value) error {
	s, ok := p.slot(f)
	if !ok {
		return fmt.Errorf("%w: client profile has no %q", wizard.ErrUnknownField, f)
	}
	s.put(v)
	return nil
}

// Clone returns a deep copy.
func (p *ClientProfile) Clone() *ClientProfile {
	out := &ClientProfile{}
	for _, f := range clientFields {
		src, _ := p.slot(f)
		dst, _ := out.slot(f)
		dst.put(src.get())
	}
	return out
}

// DisplayName joins first and last name.
func (p *ClientProfile) DisplayName() string {
	return joinName(p.FirstName, p.LastName)
}
