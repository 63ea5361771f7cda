// Package history records a summary line for each generated insight bundle.
// Raw wizard answers are never persisted; only derived summaries land here.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planwise/discovery/internal/db"
	"github.com/planwise/discovery/internal/insights"
)

// Entry is one recorded generation.
type Entry struct {
	ID                string    `json:"id"`
	GeneratedAt       time.Time `json:"generated_at"`
	CompletionPercent int       `json:"completion_percent"`
	DominantCategory  string    `json:"dominant_category,omitempty"`
	TopFocus          string    `json:"top_focus,omitempty"`
	ActionCount       int       `json:"action_count"`
}

// Store provides persistence for generation history.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record stores one generation summary. It satisfies insights.Recorder.
func (s *Store) Record(ctx context.Context, rec insights.GenerationRecord) error {
	entry := Entry{
		ID:                uuid.New().String(),
		GeneratedAt:       rec.GeneratedAt,
		CompletionPercent: rec.CompletionPercent,
		DominantCategory:  rec.DominantCategory,
		TopFocus:          rec.TopFocus,
		ActionCount:       rec.ActionCount,
	}
	return s.insert(ctx, entry)
}

func (s *Store) insert(ctx context.Context, entry Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generations (
			id, generated_at, completion_percent, dominant_category,
			top_focus, action_count
		) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.GeneratedAt.UTC().Format(time.RFC3339),
		entry.CompletionPercent,
		entry.DominantCategory,
		entry.TopFocus,
		entry.ActionCount,
	)
	if err != nil {
		return fmt.Errorf("inserting generation: %w", err)
	}
	return nil
}

// GetByID retrieves a single generation record.
func (s *Store) GetByID(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, generated_at, completion_percent, dominant_category,
			   top_focus, action_count
		FROM generations WHERE id = ?`, id)

	var (
		entry Entry
		ts    string
	)
	err := row.Scan(&entry.ID, &ts, &entry.CompletionPercent,
		&entry.DominantCategory, &entry.TopFocus, &entry.ActionCount)
	if err != nil {
		return nil, fmt.Errorf("scanning generation: %w", err)
	}
	if entry.GeneratedAt, err = time.Parse(time.RFC3339, ts); err != nil {
		return nil, fmt.Errorf("parsing generated_at: %w", err)
	}
	return &entry, nil
}

// List returns generation records newest first. limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, generated_at, completion_percent, dominant_category,
			   top_focus, action_count
		FROM generations ORDER BY generated_at DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying generations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry Entry
			ts    string
		)
		if err := rows.Scan(&entry.ID, &ts, &entry.CompletionPercent,
			&entry.DominantCategory, &entry.TopFocus, &entry.ActionCount); err != nil {
			return nil, fmt.Errorf("scanning generation: %w", err)
		}
		if entry.GeneratedAt, err = time.Parse(time.RFC3339, ts); err != nil {
			return nil, fmt.Errorf("parsing generated_at: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
