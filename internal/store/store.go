// Package store tracks which entities each bot has already handled, so
// interrupted runs can resume without re-editing.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Processed records per-bot progress keyed by (bot, gid, lang). Bots that
// are not language-specific use an empty lang.
type Processed struct {
	db *sql.DB
}

// NewProcessed creates a processed store backed by db.
func NewProcessed(db *sql.DB) *Processed {
	return &Processed{db: db}
}

// Seen reports whether the bot has already handled the entity.
func (p *Processed) Seen(ctx context.Context, bot, gid, lang string) (bool, error) {
	if err := validGID(gid); err != nil {
		return false, err
	}
	var n int
	err := p.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM processed WHERE bot = ? AND gid = ? AND lang = ?
	`, bot, gid, lang).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking processed: %w", err)
	}
	return n > 0, nil
}

// Mark records that the bot has handled the entity. Marking twice is not
// an error.
func (p *Processed) Mark(ctx context.Context, bot, gid, lang string) error {
	if err := validGID(gid); err != nil {
		return err
	}
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO processed (bot, gid, lang) VALUES (?, ?, ?)
		ON CONFLICT (bot, gid, lang) DO NOTHING
	`, bot, gid, lang)
	if err != nil {
		return fmt.Errorf("marking processed: %w", err)
	}
	return nil
}

// Count returns how many entities the bot has handled.
func (p *Processed) Count(ctx context.Context, bot string) (int, error) {
	var n int
	err := p.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM processed WHERE bot = ?
	`, bot).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting processed: %w", err)
	}
	return n, nil
}

func validGID(gid string) error {
	if _, err := uuid.Parse(gid); err != nil {
		return fmt.Errorf("invalid gid %q: %w", gid, err)
	}
	return nil
}
