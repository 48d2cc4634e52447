package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/onboard/internal/platform/id"
	"github.com/louisbranch/onboard/internal/services/web/profile"
	"github.com/louisbranch/onboard/internal/services/web/wizard"
)

// DuplicateEmailKey is the field error reported when the email is taken.
const DuplicateEmailKey = "error.field.email_taken"

// Writer implements profile.Writer on top of a ProfileStore.
type Writer struct {
	store ProfileStore
	now   func() time.Time
	newID func() (string, error)
}

// NewWriter builds a writer over store.
func NewWriter(store ProfileStore) *Writer {
	return &Writer{store: store, now: time.Now, newID: id.NewID}
}

var _ profile.Writer = (*Writer)(nil)

type agentPayload struct {
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone,omitempty"`
	Country         string        `json:"country"`
	Bio             string        `json:"bio,omitempty"`
	Skills          []string      `json:"skills"`
	Industries      []string      `json:"industries"`
	RateBand        string        `json:"rate_band"`
	Availability    string        `json:"availability"`
	ExperienceLevel string        `json:"experience_level"`
	SocialLinks     []wizard.Link `json:"social_links,omitempty"`
}

type clientPayload struct {
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone,omitempty"`
	CompanyName    string        `json:"company_name"`
	Country        string        `json:"country"`
	Industry       string        `json:"industry"`
	ServicesNeeded []string      `json:"services_needed"`
	BudgetBand     string        `json:"budget_band"`
	Timeline       string        `json:"timeline"`
	ProjectSummary string        `json:"project_summary"`
	SocialLinks    []wizard.Link `json:"social_links,omitempty"`
}

// CreateAgentProfile stores an agent profile.
func (w *Writer) CreateAgentProfile(ctx context.Context, p *profile.AgentProfile) (string, error) {
	payload := agentPayload{
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Email:           p.Email,
		Phone:           p.Phone,
		Country:         p.Country,
		Bio:             p.Bio,
		Skills:          p.Skills,
		Industries:      p.Industries,
		RateBand:        p.RateBand,
		Availability:    p.Availability,
		ExperienceLevel: p.ExperienceLevel,
		SocialLinks:     p.SocialLinks,
	}
	return w.create(ctx, profile.KindAgent, p.Email, p.DisplayName(), payload, p.ProfilePicture, p.BannerImage)
}

// CreateClientProfile stores a client profile.
func (w *Writer) CreateClientProfile(ctx context.Context, p *profile.ClientProfile) (string, error) {
	payload := clientPayload{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		Phone:          p.Phone,
		CompanyName:    p.CompanyName,
		Country:        p.Country,
		Industry:       p.Industry,
		ServicesNeeded: p.ServicesNeeded,
		BudgetBand:     p.BudgetBand,
		Timeline:       p.Timeline,
		ProjectSummary: p.ProjectSummary,
		SocialLinks:    p.SocialLinks,
	}
	return w.create(ctx, profile.KindClient, p.Email, p.DisplayName(), payload, p.ProfilePicture, p.BannerImage)
}

func (w *Writer) create(ctx context.Context, kind profile.Kind, email string, name string, payload any, picture, banner *wizard.Attachment) (string, error) {
	if w == nil || w.store == nil {
		return "", errors.New("profile store is not configured")
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode profile payload: %w", err)
	}
	recordID, err := w.newID()
	if err != nil {
		return "", err
	}
	record := ProfileRecord{
		ID:          recordID,
		Kind:        kind.String(),
		Email:       strings.ToLower(strings.TrimSpace(email)),
		DisplayName: name,
		Payload:     encoded,
		CreatedAt:   w.now().UTC(),
	}
	files := []struct {
		slot wizard.Field
		file *wizard.Attachment
	}{
		{profile.FieldProfilePicture, picture},
		{profile.FieldBannerImage, banner},
	}
	for _, f := range files {
		if f.file == nil {
			continue
		}
		record.Attachments = append(record.Attachments, Attachment{
			Slot:        string(f.slot),
			Filename:    f.file.Filename,
			ContentType: f.file.ContentType,
			Data:        f.file.Data,
		})
	}

	if err := w.store.CreateProfile(ctx, record); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return "", &profile.RejectedError{
				Message: MessageDuplicate,
				Fields:  map[string]string{string(profile.FieldEmail): DuplicateEmailKey},
			}
		}
		return "", fmt.Errorf("store profile: %w", err)
	}
	return recordID, nil
}

// MessageDuplicate is the rejection message for a taken email.
const MessageDuplicate = "submit.duplicate"
