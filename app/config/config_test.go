package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"ADDR", "STORE", "BADGER_PATH", "SQLITE_PATH", "POSTS_FILE",
	"LOCALE", "INVALID_MESSAGE", "LOG_LEVEL", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "data/badger", cfg.BadgerPath)
	assert.Equal(t, "data/postcard.db", cfg.SQLitePath)
	assert.Empty(t, cfg.PostsFile)
	assert.Equal(t, "pt_BR", cfg.Locale)
	assert.Empty(t, cfg.InvalidMessage)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADDR", ":9000")
	t.Setenv("STORE", "sqlite")
	t.Setenv("LOCALE", "en")
	t.Setenv("SHUTDOWN_TIMEOUT", "250ms")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown store", "STORE", "redis"},
		{"bad duration", "SHUTDOWN_TIMEOUT", "soon"},
		{"negative duration", "SHUTDOWN_TIMEOUT", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("ADDR")
	os.Unsetenv("LOCALE")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ADDR=:7070\nLOCALE=en\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
		os.Unsetenv("ADDR")
		os.Unsetenv("LOCALE")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	clearEnv(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
}
