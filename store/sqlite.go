package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "embed"

	"github.com/birmacher/content-gen/logger"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultDirPermissions is used when creating the database directory
const DefaultDirPermissions = 0755

//go:embed migrations_sqlite.sql
var sqliteMigrations string

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the SQLite database at the DSN path, creating the
// parent directory and tables when needed.
func NewSQLiteStore(opts ...Option) (*SQLiteStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}

	dsn := cfg.DSN
	if dsn == "" {
		logger.Error("SQLiteStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	dir := filepath.Dir(dsn)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		logger.Errorw("Failed to create database directory", "error", err, "dir", dir)
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		logger.Errorw("Failed to open SQLite connection", "error", err)
		return nil, err
	}

	if err := db.Ping(); err != nil {
		logger.Errorw("SQLite ping failed", "error", err)
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(sqliteMigrations); err != nil {
		logger.Errorw("Failed to run migrations", "error", err)
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Debugw("SQLite store ready", "dsn", dsn)

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) SaveContent(c SavedContent) error {
	_, err := s.db.Exec(`INSERT INTO saved_content (id, user_id, content_type, content, original_prompt, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.ContentType, c.Content, c.OriginalPrompt, c.CreatedAt)
	if err != nil {
		logger.Errorw("SQLiteStore SaveContent failed", "error", err, "id", c.ID)
		return fmt.Errorf("failed to insert content %s: %w", c.ID, err)
	}
	return nil
}

func (s *SQLiteStore) ListContent(userID string) ([]SavedContent, error) {
	rows, err := s.db.Query(`SELECT id, user_id, content_type, content, original_prompt, created_at
		FROM saved_content WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		logger.Errorw("SQLiteStore ListContent query failed", "error", err)
		return nil, fmt.Errorf("failed to query saved content: %w", err)
	}
	return scanContentRows(rows)
}

func (s *SQLiteStore) GetContent(id string) (*SavedContent, error) {
	row := s.db.QueryRow(`SELECT id, user_id, content_type, content, original_prompt, created_at
		FROM saved_content WHERE id = ?`, id)
	return scanContent(row)
}

func (s *SQLiteStore) DeleteContent(id string) error {
	res, err := s.db.Exec(`DELETE FROM saved_content WHERE id = ?`, id)
	if err != nil {
		logger.Errorw("SQLiteStore DeleteContent failed", "error", err, "id", id)
		return fmt.Errorf("failed to delete content %s: %w", id, err)
	}
	return requireAffected(res)
}

func (s *SQLiteStore) SavePreferences(p Preferences) error {
	_, err := s.db.Exec(`INSERT INTO user_preferences (user_id, tone, niche, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET tone = excluded.tone, niche = excluded.niche, updated_at = excluded.updated_at`,
		p.UserID, p.Tone, p.Niche, p.UpdatedAt)
	if err != nil {
		logger.Errorw("SQLiteStore SavePreferences failed", "error", err, "user_id", p.UserID)
		return fmt.Errorf("failed to save preferences for %s: %w", p.UserID, err)
	}
	return nil
}

func (s *SQLiteStore) GetPreferences(userID string) (*Preferences, error) {
	row := s.db.QueryRow(`SELECT user_id, tone, niche, updated_at FROM user_preferences WHERE user_id = ?`, userID)
	return scanPreferences(row)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// helpers shared by the SQL backends

type scanner interface {
	Scan(dest ...any) error
}

func scanContent(row scanner) (*SavedContent, error) {
	var c SavedContent
	err := row.Scan(&c.ID, &c.UserID, &c.ContentType, &c.Content, &c.OriginalPrompt, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan saved content: %w", err)
	}
	return &c, nil
}

func scanContentRows(rows *sql.Rows) ([]SavedContent, error) {
	defer rows.Close()

	var out []SavedContent
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved content rows: %w", err)
	}
	return out, nil
}

func scanPreferences(row scanner) (*Preferences, error) {
	var p Preferences
	err := row.Scan(&p.UserID, &p.Tone, &p.Niche, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan preferences: %w", err)
	}
	return &p, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
