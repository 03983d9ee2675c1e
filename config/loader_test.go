package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TALENTSIFT_CONFIG",
		"TALENTSIFT_LOG_LEVEL",
		"TALENTSIFT_DATA_DIR",
		"TALENTSIFT_CHAT_MODEL",
		"TALENTSIFT_EMBEDDING_MODEL",
		"TALENTSIFT_CACHE_TTL_MINUTES",
		"TALENTSIFT_SHORTLIST_SIZE",
	} {
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./talentsift-data", cfg.DataDir)
	assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
	assert.Equal(t, "qwen2.5:3b", cfg.ChatModel)
	assert.Equal(t, 60, cfg.CacheTTLMinutes)
	assert.Equal(t, time.Hour, cfg.CacheTTL())
	assert.Equal(t, 50, cfg.ShortlistSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TALENTSIFT_DATA_DIR", "/var/lib/talentsift")
	t.Setenv("TALENTSIFT_CHAT_MODEL", "llama3.1:8b")
	t.Setenv("TALENTSIFT_CACHE_TTL_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/talentsift", cfg.DataDir)
	assert.Equal(t, "llama3.1:8b", cfg.ChatModel)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL())
	// Untouched keys keep their defaults.
	assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "log_level: debug\nshortlist_size: 25\ntemperature: 0.2\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("TALENTSIFT_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 25, cfg.ShortlistSize)
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-9)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0644))
	t.Setenv("TALENTSIFT_CONFIG", path)
	t.Setenv("TALENTSIFT_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("TALENTSIFT_SHORTLIST_SIZE", "0")

	_, err := Load()
	assert.Error(t, err)
}
