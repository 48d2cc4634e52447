// Package sqlite stores onboarding profiles and their attachments in a local
// SQLite database.
package sqlite
