// Package sqlite provides a SQLite-backed profile storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/onboard/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/onboard/internal/services/web/storage"
	"github.com/louisbranch/onboard/internal/services/web/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists onboarding profiles in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite profile store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateProfile inserts one profile and its attachments in a single
// transaction.
func (s *Store) CreateProfile(ctx context.Context, record storage.ProfileRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	profileID := strings.TrimSpace(record.ID)
	kind := strings.TrimSpace(record.Kind)
	email := strings.TrimSpace(record.Email)
	if profileID == "" {
		return fmt.Errorf("profile id is required")
	}
	if kind == "" {
		return fmt.Errorf("profile kind is required")
	}
	if email == "" {
		return fmt.Errorf("profile email is required")
	}
	payload := record.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin profile tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO profiles (
			id, kind, email, display_name, payload_json, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?)`,
		profileID,
		kind,
		email,
		strings.TrimSpace(record.DisplayName),
		string(payload),
		toMillis(record.CreatedAt),
	)
	if err != nil {
		if isProfileUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}

	for _, attachment := range record.Attachments {
		data := attachment.Data
		if data == nil {
			data = []byte{}
		}
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO profile_attachments (
				profile_id, slot, filename, content_type, data
			 ) VALUES (?, ?, ?, ?, ?)`,
			profileID,
			attachment.Slot,
			attachment.Filename,
			attachment.ContentType,
			data,
		)
		if err != nil {
			return fmt.Errorf("insert profile attachment %s: %w", attachment.Slot, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit profile tx: %w", err)
	}
	return nil
}

// GetProfile returns one profile with its attachments.
func (s *Store) GetProfile(ctx context.Context, id string) (storage.ProfileRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.ProfileRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ProfileRecord{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.ProfileRecord{}, fmt.Errorf("profile id is required")
	}

	var (
		record    storage.ProfileRecord
		payload   string
		createdAt int64
	)
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, kind, email, display_name, payload_json, created_at
		   FROM profiles
		  WHERE id = ?`,
		id,
	)
	if err := row.Scan(&record.ID, &record.Kind, &record.Email, &record.DisplayName, &payload, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ProfileRecord{}, storage.ErrNotFound
		}
		return storage.ProfileRecord{}, fmt.Errorf("get profile: %w", err)
	}
	record.Payload = []byte(payload)
	record.CreatedAt = fromMillis(createdAt)

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT slot, filename, content_type, data
		   FROM profile_attachments
		  WHERE profile_id = ?
		  ORDER BY slot ASC`,
		id,
	)
	if err != nil {
		return storage.ProfileRecord{}, fmt.Errorf("list profile attachments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var attachment storage.Attachment
		if err := rows.Scan(&attachment.Slot, &attachment.Filename, &attachment.ContentType, &attachment.Data); err != nil {
			return storage.ProfileRecord{}, fmt.Errorf("scan profile attachment: %w", err)
		}
		record.Attachments = append(record.Attachments, attachment)
	}
	if err := rows.Err(); err != nil {
		return storage.ProfileRecord{}, fmt.Errorf("iterate profile attachments: %w", err)
	}
	return record, nil
}

func isProfileUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "profiles.")
}

var _ storage.ProfileStore = (*Store)(nil)
