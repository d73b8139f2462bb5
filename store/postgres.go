package store

import (
	"database/sql"
	"fmt"

	_ "embed"

	"github.com/birmacher/content-gen/logger"
	_ "github.com/lib/pq"
)

//go:embed migrations_postgres.sql
var postgresMigrations string

type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to PostgreSQL and applies migrations
func NewPostgresStore(opts ...Option) (*PostgresStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.DSN == "" {
		logger.Error("PostgresStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		logger.Errorw("Failed to open Postgres connection", "error", err)
		return nil, err
	}
	if err := db.Ping(); err != nil {
		logger.Errorw("Postgres ping failed", "error", err)
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(postgresMigrations); err != nil {
		logger.Errorw("Failed to run migrations", "error", err)
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Debug("Postgres store ready")

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) SaveContent(c SavedContent) error {
	_, err := s.db.Exec(`INSERT INTO saved_content (id, user_id, content_type, content, original_prompt, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.UserID, c.ContentType, c.Content, c.OriginalPrompt, c.CreatedAt)
	if err != nil {
		logger.Errorw("PostgresStore SaveContent failed", "error", err, "id", c.ID)
		return fmt.Errorf("failed to insert content %s: %w", c.ID, err)
	}
	return nil
}

func (s *PostgresStore) ListContent(userID string) ([]SavedContent, error) {
	rows, err := s.db.Query(`SELECT id, user_id, content_type, content, original_prompt, created_at
		FROM saved_content WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		logger.Errorw("PostgresStore ListContent query failed", "error", err)
		return nil, fmt.Errorf("failed to query saved content: %w", err)
	}
	return scanContentRows(rows)
}

func (s *PostgresStore) GetContent(id string) (*SavedContent, error) {
	row := s.db.QueryRow(`SELECT id, user_id, content_type, content, original_prompt, created_at
		FROM saved_content WHERE id = $1`, id)
	return scanContent(row)
}

func (s *PostgresStore) DeleteContent(id string) error {
	res, err := s.db.Exec(`DELETE FROM saved_content WHERE id = $1`, id)
	if err != nil {
		logger.Errorw("PostgresStore DeleteContent failed", "error", err, "id", id)
		return fmt.Errorf("failed to delete content %s: %w", id, err)
	}
	return requireAffected(res)
}

func (s *PostgresStore) SavePreferences(p Preferences) error {
	_, err := s.db.Exec(`INSERT INTO user_preferences (user_id, tone, niche, updated_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET tone = EXCLUDED.tone, niche = EXCLUDED.niche, updated_at = EXCLUDED.updated_at`,
		p.UserID, p.Tone, p.Niche, p.UpdatedAt)
	if err != nil {
		logger.Errorw("PostgresStore SavePreferences failed", "error", err, "user_id", p.UserID)
		return fmt.Errorf("failed to save preferences for %s: %w", p.UserID, err)
	}
	return nil
}

func (s *PostgresStore) GetPreferences(userID string) (*Preferences, error) {
	row := s.db.QueryRow(`SELECT user_id, tone, niche, updated_at FROM user_preferences WHERE user_id = $1`, userID)
	return scanPreferences(row)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
