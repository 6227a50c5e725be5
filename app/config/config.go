// Package config reads the server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Store backends selectable with STORE.
const (
	StoreMemory = "memory"
	StoreBadger = "badger"
	StoreSQLite = "sqlite"
)

// Config holds the server settings. An empty InvalidMessage means the
// locale's own empty-comment message.
type Config struct {
	Addr            string
	Store           string
	BadgerPath      string
	SQLitePath      string
	PostsFile       string
	Locale          string
	InvalidMessage  string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Load reads .env from the working directory when present, then builds a
// Config from the environment. Variables already set win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:           getEnv("ADDR", ":8080"),
		Store:          getEnv("STORE", StoreMemory),
		BadgerPath:     getEnv("BADGER_PATH", "data/badger"),
		SQLitePath:     getEnv("SQLITE_PATH", "data/postcard.db"),
		PostsFile:      os.Getenv("POSTS_FILE"),
		Locale:         getEnv("LOCALE", "pt_BR"),
		InvalidMessage: os.Getenv("INVALID_MESSAGE"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that have a fixed set of values.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreBadger, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q (want memory, badger or sqlite)", c.Store)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
