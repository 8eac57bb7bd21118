package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/poiesic/peermatch"
	"github.com/poiesic/peermatch/ai"
	"github.com/poiesic/peermatch/backfill"
	"github.com/poiesic/peermatch/embedding"
	"github.com/poiesic/peermatch/search"
)

// Config represents the peermatch tool configuration.
type Config struct {
	// Data location
	Storage StorageConfig `toml:"storage"`

	// Embedding provider
	Embedding EmbeddingConfig `toml:"embedding"`

	// Retrieval and hybrid ranking
	Search SearchConfig `toml:"search"`

	// Embedding backfill
	Backfill BackfillConfig `toml:"backfill"`
}

// StorageConfig contains data location settings.
type StorageConfig struct {
	DataDir string `toml:"data_dir"` // Directory holding the profile store and search index
}

// EmbeddingConfig contains embedding provider settings.
type EmbeddingConfig struct {
	Host    string `toml:"host"`    // OpenAI-compatible service URL
	Model   string `toml:"model"`   // Embedding model name
	Timeout string `toml:"timeout"` // Per-request timeout (e.g. "10s")
}

// SearchConfig contains semantic retrieval and hybrid ranking settings.
type SearchConfig struct {
	Threshold      float64 `toml:"threshold"`       // Cosine similarity cutoff
	WideningStep   float64 `toml:"widening_step"`   // Cutoff reduction when results are sparse
	MinResults     int     `toml:"min_results"`     // Result floor that triggers widening
	MaxResults     int     `toml:"max_results"`     // Semantic result cap
	KeywordWeight  float64 `toml:"keyword_weight"`  // Keyword share of the hybrid score
	SemanticWeight float64 `toml:"semantic_weight"` // Semantic share of the hybrid score
	AgreementBoost float64 `toml:"agreement_boost"` // Multiplier when both methods agree
}

// BackfillConfig contains embedding backfill settings.
type BackfillConfig struct {
	BatchSize     int    `toml:"batch_size"`     // Profiles per checkpointed batch
	ProviderDelay string `toml:"provider_delay"` // Minimum spacing between provider calls
	MaxRetries    int    `toml:"max_retries"`    // Attempts per profile before skipping
}

// DefaultConfig returns the default configuration. The values mirror the
// library defaults in the ai, embedding, search and backfill packages.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir: "./peermatch_db",
		},
		Embedding: EmbeddingConfig{
			Host:    "http://localhost:11434/v1",
			Model:   "nomic-embed-text",
			Timeout: "10s",
		},
		Search: SearchConfig{
			Threshold:      0.32,
			WideningStep:   0.05,
			MinResults:     3,
			MaxResults:     6,
			KeywordWeight:  0.4,
			SemanticWeight: 0.6,
			AgreementBoost: 1.2,
		},
		Backfill: BackfillConfig{
			BatchSize:     100,
			ProviderDelay: "500ms",
			MaxRetries:    3,
		},
	}
}

// LoadConfig reads the configuration file at path. An empty path or a
// missing file yields the defaults; keys absent from the file keep their
// default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return config, nil
}

// Save writes the configuration to path as TOML.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return fmt.Errorf("storage data_dir cannot be empty")
	}
	if _, err := time.ParseDuration(c.Embedding.Timeout); err != nil {
		return fmt.Errorf("invalid embedding timeout %q: %w", c.Embedding.Timeout, err)
	}
	if _, err := time.ParseDuration(c.Backfill.ProviderDelay); err != nil {
		return fmt.Errorf("invalid backfill provider_delay %q: %w", c.Backfill.ProviderDelay, err)
	}
	if c.Backfill.BatchSize <= 0 {
		return fmt.Errorf("backfill batch_size must be positive: %d", c.Backfill.BatchSize)
	}
	if c.Backfill.MaxRetries <= 0 {
		return fmt.Errorf("backfill max_retries must be positive: %d", c.Backfill.MaxRetries)
	}
	if err := c.searchConfig().Validate(); err != nil {
		return err
	}
	return c.embeddingConfig().Validate()
}

// searchConfig maps the [search] weights onto the hybrid ranking config.
func (c *Config) searchConfig() search.Config {
	return search.Config{
		KeywordWeight:  c.Search.KeywordWeight,
		SemanticWeight: c.Search.SemanticWeight,
		AgreementBoost: c.Search.AgreementBoost,
	}
}

// embeddingConfig maps the [search] retrieval knobs onto the store config,
// keeping library defaults for the fields the file does not cover.
func (c *Config) embeddingConfig() embedding.Config {
	config := embedding.DefaultConfig()
	config.Threshold = float32(c.Search.Threshold)
	config.WideningStep = float32(c.Search.WideningStep)
	config.MinResults = c.Search.MinResults
	config.MaxResults = c.Search.MaxResults
	return config
}

// aiConfig maps the [embedding] section onto the provider config.
func (c *Config) aiConfig() (*ai.Config, error) {
	timeout, err := time.ParseDuration(c.Embedding.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid embedding timeout %q: %w", c.Embedding.Timeout, err)
	}
	return ai.NewConfig(
		ai.WithHost(c.Embedding.Host),
		ai.WithEmbeddingModel(c.Embedding.Model),
		ai.WithRequestTimeout(timeout),
	), nil
}

// backfillConfig maps the [backfill] section onto the backfill config,
// keeping library defaults for the fields the file does not cover.
func (c *Config) backfillConfig() (backfill.Config, error) {
	delay, err := time.ParseDuration(c.Backfill.ProviderDelay)
	if err != nil {
		return backfill.Config{}, fmt.Errorf("invalid backfill provider_delay %q: %w", c.Backfill.ProviderDelay, err)
	}
	config := backfill.DefaultConfig()
	config.BatchSize = c.Backfill.BatchSize
	config.MaxRetries = c.Backfill.MaxRetries
	config.ProviderDelay = delay
	return config, nil
}

// databaseOptions builds the Database options the configuration implies.
func (c *Config) databaseOptions() ([]peermatch.DatabaseOption, error) {
	aiConfig, err := c.aiConfig()
	if err != nil {
		return nil, err
	}
	return []peermatch.DatabaseOption{
		peermatch.WithAIConfig(aiConfig),
		peermatch.WithEmbeddingConfig(c.embeddingConfig()),
		peermatch.WithSearchConfig(c.searchConfig()),
	}, nil
}
