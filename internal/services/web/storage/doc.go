// Package storage turns completed onboarding drafts into profile records and
// hands them to a ProfileStore.
package storage
