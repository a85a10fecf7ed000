package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Storage
	StorageType string // "memory" or "sqlite"
	DataDir     string

	// Slapjack timing
	FlipInterval time.Duration
	SlapWindow   time.Duration

	// Elasticsearch export (optional; disabled when URL is empty)
	ElasticsearchURL      string
	ElasticsearchUsername string
	ElasticsearchPassword string
	ExportInterval        time.Duration

	// Logging
	LogLevel string

	// Identity results are recorded under
	PlayerName string
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Get working directory for resource paths
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg := &Config{
		StorageType:           getEnvWithDefault("STORAGE_TYPE", "memory"),
		DataDir:               getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data")),
		ElasticsearchURL:      os.Getenv("ELASTICSEARCH_URL"),
		ElasticsearchUsername: os.Getenv("ELASTICSEARCH_USERNAME"),
		ElasticsearchPassword: os.Getenv("ELASTICSEARCH_PASSWORD"),
		LogLevel:              getEnvWithDefault("LOG_LEVEL", "INFO"),
		PlayerName:            getEnvWithDefault("PLAYER_NAME", "Player 1"),
	}

	cfg.FlipInterval, err = getDurationWithDefault("FLIP_INTERVAL", 1500*time.Millisecond)
	if err != nil {
		return nil, err
	}
	cfg.SlapWindow, err = getDurationWithDefault("SLAP_WINDOW", 2*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.ExportInterval, err = getDurationWithDefault("EXPORT_INTERVAL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if cfg.StorageType == "sqlite" {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// validate checks if all required configuration is present
func (c *Config) validate() error {
	if c.StorageType != "memory" && c.StorageType != "sqlite" {
		return fmt.Errorf("STORAGE_TYPE must be \"memory\" or \"sqlite\", got %q", c.StorageType)
	}
	if c.FlipInterval <= 0 {
		return fmt.Errorf("FLIP_INTERVAL must be positive")
	}
	if c.SlapWindow <= 0 {
		return fmt.Errorf("SLAP_WINDOW must be positive")
	}
	return nil
}

// DatabasePath returns the SQLite database file location
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "cardtable.db")
}

// ExportEnabled reports whether the Elasticsearch exporter should run
func (c *Config) ExportEnabled() bool {
	return c.ElasticsearchURL != ""
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationWithDefault parses a duration environment variable
func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
