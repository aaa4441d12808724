// Package sqlite provides the SQLite-backed subscriber store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/murmurhq/website/internal/platform/storage/sqlitemigrate"
	sitestorage "github.com/murmurhq/website/internal/services/site/storage"
	"github.com/murmurhq/website/internal/services/site/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists newsletter subscribers in a single SQLite file.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a subscriber SQLite store.
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

	store := &Store{sqlDB: sqlDB}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSubscriber records a signup. An email that is already subscribed keeps
// its original row.
func (s *Store) PutSubscriber(ctx context.Context, subscriber sitestorage.Subscriber) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	email := strings.TrimSpace(subscriber.Email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(subscriber.ID) == "" {
		return fmt.Errorf("subscriber id is required")
	}

	createdAt := subscriber.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO subscribers (id, email, locale, source, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (email) DO NOTHING`,
		subscriber.ID,
		email,
		subscriber.Locale,
		subscriber.Source,
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("put subscriber: %w", err)
	}
	return nil
}

// GetSubscriberByEmail loads a subscriber record by email.
func (s *Store) GetSubscriberByEmail(ctx context.Context, email string) (sitestorage.Subscriber, bool, error) {
	if s == nil || s.sqlDB == nil {
		return sitestorage.Subscriber{}, false, fmt.Errorf("storage is not configured")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return sitestorage.Subscriber{}, false, fmt.Errorf("email is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, email, locale, source, created_at
		 FROM subscribers
		 WHERE email = ?`,
		email,
	)

	var subscriber sitestorage.Subscriber
	var createdAt int64
	if err := row.Scan(
		&subscriber.ID,
		&subscriber.Email,
		&subscriber.Locale,
		&subscriber.Source,
		&createdAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return sitestorage.Subscriber{}, false, nil
		}
		return sitestorage.Subscriber{}, false, fmt.Errorf("get subscriber: %w", err)
	}

	subscriber.CreatedAt = fromMillis(createdAt)
	return subscriber, true, nil
}

// CountSubscribers returns the number of stored signups.
func (s *Store) CountSubscribers(ctx context.Context) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	var count int64
	row := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscribers`)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return count, nil
}

// runMigrations applies embedded SQL migrations in filename order.
func (s *Store) runMigrations() error {
	return sqlitemigrate.Apply(context.Background(), s.sqlDB, migrations.FS, "")
}

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
