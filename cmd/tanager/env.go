package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tanagerbot/tanager/internal/config"
	"github.com/tanagerbot/tanager/internal/database"
	"github.com/tanagerbot/tanager/internal/discogs"
	"github.com/tanagerbot/tanager/internal/logging"
	"github.com/tanagerbot/tanager/internal/mb"
	"github.com/tanagerbot/tanager/internal/search"
	"github.com/tanagerbot/tanager/internal/store"
	"github.com/tanagerbot/tanager/internal/wiki"
)

// commandEnv builds the shared collaborators a bot command needs. Nothing
// is constructed until a command actually runs.
type commandEnv struct {
	configPath *string
}

// runtime is the assembled state for one bot run.
type runtime struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB
	store  *store.Processed
	wiki   *wiki.Client
	search *search.Client

	logCloser io.Closer
}

func (e *commandEnv) build() (*runtime, error) {
	configPath := *e.configPath
	if configPath == "" {
		configPath = os.Getenv("TG_CONFIG_PATH")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, logCloser := logging.New(cfg.Logging)
	slog.SetDefault(logger)

	db, err := database.Open(cfg.Data.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("database ready", slog.String("path", cfg.Data.DatabasePath))

	return &runtime{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		store:     store.NewProcessed(db),
		wiki:      wiki.NewClient(cfg.Data.CacheDir, cfg.Wiki.RequestsPerSecond, logger),
		search:    search.New(cfg.Search.URL, logger),
		logCloser: logCloser,
	}, nil
}

// editor logs in and returns the edit client.
func (r *runtime) editor(ctx context.Context) (*mb.Client, error) {
	client, err := mb.New(r.cfg.MusicBrainz.Server, r.cfg.MusicBrainz.Username,
		r.cfg.MusicBrainz.Password, r.logger)
	if err != nil {
		return nil, err
	}
	if err := client.Login(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

func (r *runtime) discogsClient() *discogs.Client {
	return discogs.New(r.cfg.Discogs.URL, r.cfg.Discogs.Token, r.logger)
}

func (r *runtime) close() {
	if err := r.db.Close(); err != nil {
		r.logger.Error("closing database", "error", err)
	}
	if r.logCloser != nil {
		_ = r.logCloser.Close()
	}
}
