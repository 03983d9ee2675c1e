// Package config defines process configuration and loading.
//
// Configuration layers defaults, an optional YAML file, and environment
// variables, in that order of precedence. Component-level tuning still
// happens through each package's functional options; this package only
// carries what the binary needs to wire them.
package config

import (
	"time"
)

// Config contains process configuration for the talentsift binary.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataDir is where the BadgerDB database lives.
	DataDir string `koanf:"data_dir"`

	// EmbeddingHost is the OpenAI-compatible embeddings endpoint.
	EmbeddingHost string `koanf:"embedding_host"`

	// ChatHost is the OpenAI-compatible chat completions endpoint.
	ChatHost string `koanf:"chat_host"`

	// EmbeddingModel names the embedding model.
	EmbeddingModel string `koanf:"embedding_model"`

	// ChatModel names the chat model used for answers.
	ChatModel string `koanf:"chat_model"`

	// Token authenticates against the AI endpoints. Local servers accept
	// any non-empty value.
	Token string `koanf:"token"`

	// Temperature controls answer generation randomness.
	Temperature float64 `koanf:"temperature"`

	// CacheTTLMinutes bounds how long retrieval responses stay cached.
	CacheTTLMinutes int `koanf:"cache_ttl_minutes"`

	// ShortlistSize is the semantic shortlist size before re-ranking.
	ShortlistSize int `koanf:"shortlist_size"`

	// PoolSize sets the scoring worker pool size. Zero means automatic.
	PoolSize int `koanf:"pool_size"`

	// EmbedBatchSize is how many texts go to the embedder per call.
	EmbedBatchSize int `koanf:"embed_batch_size"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		DataDir:         "./talentsift-data",
		EmbeddingHost:   "http://localhost:11434/v1",
		ChatHost:        "http://localhost:11434/v1",
		EmbeddingModel:  "embeddinggemma",
		ChatModel:       "qwen2.5:3b",
		Token:           "none",
		Temperature:     0.7,
		CacheTTLMinutes: 60,
		ShortlistSize:   50,
		EmbedBatchSize:  32,
	}
}

// CacheTTL returns the cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}
