// Package storage defines persistence contracts for completed onboarding
// profiles and adapts them to the profile submission boundary.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested profile record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a profile with the same kind and email exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// Attachment is one stored file of a profile.
type Attachment struct {
	Slot        string
	Filename    string
	ContentType string
	Data        []byte
}

// ProfileRecord is one persisted profile. Payload holds the JSON encoded
// draft without attachment bytes.
type ProfileRecord struct {
	ID          string
	Kind        string
	Email       string
	DisplayName string
	Payload     []byte
	Attachments []Attachment
	CreatedAt   time.Time
}

// ProfileStore persists profile records.
type ProfileStore interface {
	CreateProfile(ctx context.Context, record ProfileRecord) error
	GetProfile(ctx context.Context, id string) (ProfileRecord, error)
}
