// Package config handles the persistent application configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/AbhishekSharma9161/curio/internal/content"
)

// Config is the persistent application configuration.
type Config struct {
	// Content API keys and endpoints. Empty keys leave the repository on
	// its mock fallback path.
	NewsAPIKey string `json:"news_api_key,omitempty"`
	NewsURL    string `json:"news_url,omitempty"`
	TMDBAPIKey string `json:"tmdb_api_key,omitempty"`
	MoviesURL  string `json:"movies_url,omitempty"`

	// Optional RSS feeds ingested as additional news providers.
	RSSFeeds []content.RSSFeed `json:"rss_feeds,omitempty"`

	// PageSize is the per-source batch size for the initial ingest.
	PageSize int `json:"page_size"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		PageSize: 6,
	}
}

// DataDir returns the application data directory (~/.curio).
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".curio")
}

// Path returns the path to the config file.
func Path() string {
	return filepath.Join(DataDir(), "config.json")
}

// Load reads config from disk, or returns defaults. A missing or corrupt
// file degrades gracefully to defaults; environment variables win over the
// file for API keys.
func Load() (*Config, error) {
	// Pick up a .env next to the binary if present. Missing files are fine.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err == nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			cfg = DefaultConfig()
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.AutoPopulateFromEnv()
	if cfg.PageSize <= 0 {
		cfg.PageSize = 6
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600) // Restrictive permissions for API keys
}

// AutoPopulateFromEnv fills in API keys from environment variables.
func (c *Config) AutoPopulateFromEnv() {
	if key := os.Getenv("NEWS_API_KEY"); key != "" {
		c.NewsAPIKey = key
	}
	if key := os.Getenv("TMDB_API_KEY"); key != "" {
		c.TMDBAPIKey = key
	}
}
