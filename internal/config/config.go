package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tanagerbot/tanager/internal/logging"
)

// Config holds all application configuration.
type Config struct {
	Data        DataConfig        `yaml:"data"`
	MusicBrainz MusicBrainzConfig `yaml:"musicbrainz"`
	Wiki        WikiConfig        `yaml:"wiki"`
	Search      SearchConfig      `yaml:"search"`
	Discogs     DiscogsConfig     `yaml:"discogs"`
	Logging     logging.Config    `yaml:"logging"`
}

// DataConfig holds local state paths.
type DataConfig struct {
	Dir          string `yaml:"dir"`
	DatabasePath string `yaml:"database_path"`
	CacheDir     string `yaml:"cache_dir"`
}

// MusicBrainzConfig holds the edit server endpoint and bot credentials.
type MusicBrainzConfig struct {
	Server   string `yaml:"server"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// WikiConfig holds wiki fetch settings.
type WikiConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// SearchConfig holds the full-text search endpoint.
type SearchConfig struct {
	URL string `yaml:"url"`
}

// DiscogsConfig holds the Discogs API endpoint and token.
type DiscogsConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "/data",
		},
		MusicBrainz: MusicBrainzConfig{
			Server: "https://test.musicbrainz.org",
		},
		Wiki: WikiConfig{
			RequestsPerSecond: 2,
		},
		Discogs: DiscogsConfig{
			URL: "https://api.discogs.com",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads config from a YAML file (if it exists) and overrides with
// environment variables. Environment variables take precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("TG_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("TG_DB_PATH"); v != "" {
		c.Data.DatabasePath = v
	}
	if v := os.Getenv("TG_CACHE_DIR"); v != "" {
		c.Data.CacheDir = v
	}
	if v := os.Getenv("TG_MB_SERVER"); v != "" {
		c.MusicBrainz.Server = v
	}
	if v := os.Getenv("TG_MB_USERNAME"); v != "" {
		c.MusicBrainz.Username = v
	}
	if v := os.Getenv("TG_MB_PASSWORD"); v != "" {
		c.MusicBrainz.Password = v
	}
	if v := os.Getenv("TG_WIKI_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil {
			c.Wiki.RequestsPerSecond = rps
		}
	}
	if v := os.Getenv("TG_SEARCH_URL"); v != "" {
		c.Search.URL = v
	}
	if v := os.Getenv("TG_DISCOGS_URL"); v != "" {
		c.Discogs.URL = v
	}
	if v := os.Getenv("TG_DISCOGS_TOKEN"); v != "" {
		c.Discogs.Token = v
	}
	if v := os.Getenv("TG_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("TG_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}

func (c *Config) validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data dir is required")
	}
	if c.Data.DatabasePath == "" {
		c.Data.DatabasePath = filepath.Join(c.Data.Dir, "tanager.db")
	}
	if c.Data.CacheDir == "" {
		c.Data.CacheDir = filepath.Join(c.Data.Dir, "cache")
	}
	if c.MusicBrainz.Server == "" {
		return fmt.Errorf("musicbrainz server is required")
	}
	if c.Wiki.RequestsPerSecond <= 0 {
		return fmt.Errorf("invalid wiki requests_per_second: %v", c.Wiki.RequestsPerSecond)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	if !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}
	return nil
}
