// Package store persists generated content and per-user preferences.
//
// It includes an in-memory store for tests plus SQLite and PostgreSQL backends.
package store

import (
	"errors"
	"fmt"
	"time"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// SavedContent is one generated result kept for later review
type SavedContent struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	ContentType    string    `json:"content_type"`
	Content        string    `json:"content"`
	OriginalPrompt string    `json:"original_prompt"`
	CreatedAt      time.Time `json:"created_at"`
}

// Preferences holds a user's writing preferences
type Preferences struct {
	UserID    string    `json:"user_id"`
	Tone      string    `json:"tone"`
	Niche     string    `json:"niche"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is implemented by every backend
type Store interface {
	SaveContent(c SavedContent) error
	// ListContent returns a user's records, newest first
	ListContent(userID string) ([]SavedContent, error)
	GetContent(id string) (*SavedContent, error)
	DeleteContent(id string) error
	// SavePreferences inserts or replaces the user's preferences
	SavePreferences(p Preferences) error
	GetPreferences(userID string) (*Preferences, error)
	Close() error
}

// Opts holds configuration options for store implementations
type Opts struct {
	DSN string
}

// Option configures a store
type Option func(*Opts)

// WithDSN sets the data source name (file path for SQLite, connection string for PostgreSQL)
func WithDSN(dsn string) Option {
	return func(o *Opts) {
		o.DSN = dsn
	}
}

// NewStore opens the backend named by driver
func NewStore(driver string, opts ...Option) (Store, error) {
	switch driver {
	case DriverMemory:
		return NewInMemoryStore(), nil
	case DriverSQLite, "sqlite3":
		s, err := NewSQLiteStore(opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverPostgres, "postgresql":
		s, err := NewPostgresStore(opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported store driver: %s", driver)
}
