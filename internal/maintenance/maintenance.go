package maintenance

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
)

// BotCount is the number of processed entities recorded for one bot.
type BotCount struct {
	Bot   string `json:"bot"`
	Count int64  `json:"count"`
}

// Status holds database maintenance status information.
type Status struct {
	DBFileSize  int64      `json:"db_file_size"`
	WALFileSize int64      `json:"wal_file_size"`
	PageCount   int64      `json:"page_count"`
	PageSize    int64      `json:"page_size"`
	Processed   []BotCount `json:"processed"`
}

// Service provides database maintenance operations.
type Service struct {
	db     *sql.DB
	dbPath string
	logger *slog.Logger
}

// NewService creates a maintenance service.
func NewService(db *sql.DB, dbPath string, logger *slog.Logger) *Service {
	return &Service{
		db:     db,
		dbPath: dbPath,
		logger: logger.With(slog.String("component", "maintenance")),
	}
}

// Status returns current database maintenance status, including how many
// entities each bot has marked processed.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	st := &Status{}

	if info, err := os.Stat(s.dbPath); err == nil {
		st.DBFileSize = info.Size()
	}
	if info, err := os.Stat(s.dbPath + "-wal"); err == nil {
		st.WALFileSize = info.Size()
	}

	if err := s.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&st.PageCount); err != nil {
		s.logger.Warn("reading page_count", "error", err)
	}
	if err := s.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&st.PageSize); err != nil {
		s.logger.Warn("reading page_size", "error", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT bot, COUNT(*) FROM processed GROUP BY bot ORDER BY bot`)
	if err != nil {
		return nil, fmt.Errorf("counting processed rows: %w", err)
	}
	defer rows.Close() //nolint:errcheck
	for rows.Next() {
		var bc BotCount
		if err := rows.Scan(&bc.Bot, &bc.Count); err != nil {
			return nil, fmt.Errorf("scanning processed count: %w", err)
		}
		st.Processed = append(st.Processed, bc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating processed counts: %w", err)
	}

	return st, nil
}

// Optimize runs PRAGMA optimize followed by a WAL checkpoint.
func (s *Service) Optimize(ctx context.Context) error {
	s.logger.Info("running PRAGMA optimize")
	if _, err := s.db.ExecContext(ctx, "PRAGMA optimize"); err != nil {
		return fmt.Errorf("PRAGMA optimize: %w", err)
	}

	s.logger.Info("running WAL checkpoint")
	if _, err := s.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("WAL checkpoint: %w", err)
	}

	s.logger.Info("optimize complete")
	return nil
}

// Vacuum runs VACUUM to rebuild the database file.
func (s *Service) Vacuum(ctx context.Context) error {
	s.logger.Info("running VACUUM")
	if _, err := s.db.ExecContext(ctx, "VACUUM"); err != nil {
		return fmt.Errorf("VACUUM: %w", err)
	}
	s.logger.Info("vacuum complete")
	return nil
}
