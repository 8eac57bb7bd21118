// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package peermatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/poiesic/peermatch/ai"
	"github.com/poiesic/peermatch/ai/openai"
	"github.com/poiesic/peermatch/backfill"
	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/embedding"
	"github.com/poiesic/peermatch/ingestion"
	"github.com/poiesic/peermatch/match"
	"github.com/poiesic/peermatch/scoring"
	"github.com/poiesic/peermatch/search"
	"github.com/poiesic/peermatch/storage"
	"github.com/poiesic/peermatch/storage/badger"
	"github.com/poiesic/peermatch/storage/sqlite"
)

// topSkillsLimit bounds the skill-frequency aggregation in Stats.
const topSkillsLimit = 10

// ProfileStorePath returns the profile store location under dataDir.
func ProfileStorePath(dataDir string) string {
	return filepath.Join(dataDir, "profiles")
}

// SearchIndexPath returns the lexical index location under dataDir.
func SearchIndexPath(dataDir string) string {
	return filepath.Join(dataDir, "search.db")
}

// Database bundles the profile store, the lexical index and the embedding
// provider, and hands out the components built on top of them.
type Database struct {
	repos        *badger.Repositories
	index        *sqlite.Index
	provider     ai.Provider
	store        *embedding.Store
	searchConfig search.Config
	logger       *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig        *ai.Config
	embeddingOff    bool
	logger          *slog.Logger
	searchConfig    search.Config
	embeddingConfig embedding.Config
	synonyms        map[string][]string
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithoutEmbedding disables the embedding provider. Semantic search and
// the backfiller report unavailable; keyword search still works.
func WithoutEmbedding() DatabaseOption {
	return func(o *databaseOptions) {
		o.embeddingOff = true
	}
}

// WithLogger sets the logger shared by the assembled components.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSearchConfig replaces the hybrid retriever's blending parameters.
func WithSearchConfig(config search.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.searchConfig = config
	}
}

// WithEmbeddingConfig replaces the semantic store's threshold parameters.
func WithEmbeddingConfig(config embedding.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.embeddingConfig = config
	}
}

// WithSynonyms replaces the keyword query expansion map.
func WithSynonyms(synonyms map[string][]string) DatabaseOption {
	return func(o *databaseOptions) {
		if synonyms != nil {
			o.synonyms = synonyms
		}
	}
}

// NewDatabase opens the profile store and lexical index under dataDir and
// wires the embedding provider. On failure everything opened so far is
// closed in reverse order.
func NewDatabase(dataDir string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig:        ai.DefaultConfig(),
		logger:          slog.Default(),
		searchConfig:    search.DefaultConfig(),
		embeddingConfig: embedding.DefaultConfig(),
		synonyms:        sqlite.DefaultSynonyms(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if err := options.searchConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search config: %w", err)
	}

	// Open the profile store
	repos, err := badger.OpenRepositories(ProfileStorePath(dataDir), false)
	if err != nil {
		return nil, err
	}

	// Open the lexical index
	index, err := sqlite.Open(SearchIndexPath(dataDir),
		sqlite.WithLogger(options.logger),
		sqlite.WithSynonyms(options.synonyms))
	if err != nil {
		repos.Close()
		return nil, err
	}

	// Create the embedding provider unless semantic search is disabled
	var provider ai.Provider
	var embedder ai.Embedder
	if !options.embeddingOff {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			index.Close()
			repos.Close()
			return nil, err
		}
		embedder = provider.Embedder()
	}

	// Create the semantic store over the provider
	store, err := embedding.NewStore(repos.Embeddings, repos.Profiles, embedder,
		embedding.WithConfig(options.embeddingConfig),
		embedding.WithLogger(options.logger))
	if err != nil {
		if provider != nil {
			provider.Close()
		}
		index.Close()
		repos.Close()
		return nil, err
	}

	return &Database{
		repos:        repos,
		index:        index,
		provider:     provider,
		store:        store,
		searchConfig: options.searchConfig,
		logger:       options.logger,
	}, nil
}

// Close shuts the database down: provider first, then the lexical index,
// then the profile store. Every close error is logged; the first one is
// returned.
func (db *Database) Close() error {
	var first error

	if db.provider != nil {
		if err := db.provider.Close(); err != nil {
			db.logger.Error("error closing embedding provider", "err", err)
			first = err
		}
	}

	if err := db.index.Close(); err != nil {
		db.logger.Error("error closing search index", "err", err)
		if first == nil {
			first = err
		}
	}

	if err := db.repos.Close(); err != nil {
		db.logger.Error("error closing profile store", "err", err)
		if first == nil {
			first = err
		}
	}

	return first
}

// Repositories exposes the underlying storage repositories.
func (db *Database) Repositories() *badger.Repositories {
	return db.repos
}

// SearchIndex exposes the lexical index.
func (db *Database) SearchIndex() storage.SearchIndex {
	return db.index
}

// EmbeddingStore exposes the semantic store.
func (db *Database) EmbeddingStore() *embedding.Store {
	return db.store
}

// Searcher builds a hybrid retriever over the index and the semantic store.
func (db *Database) Searcher(opts ...search.Option) (*search.Searcher, error) {
	opts = append([]search.Option{
		search.WithConfig(db.searchConfig),
		search.WithLogger(db.logger),
	}, opts...)
	return search.NewSearcher(db.index, db.store, opts...)
}

// Scorer builds a pairwise profile scorer.
func (db *Database) Scorer(opts ...scoring.Option) (*scoring.Scorer, error) {
	opts = append([]scoring.Option{scoring.WithLogger(db.logger)}, opts...)
	return scoring.NewScorer(opts...)
}

// Learner builds the preference learner over the stored weights and
// feedback log.
func (db *Database) Learner(opts ...match.LearnerOption) (*match.Learner, error) {
	opts = append([]match.LearnerOption{match.WithLearnerLogger(db.logger)}, opts...)
	return match.NewLearner(db.repos.Weights, db.repos.Feedback, opts...)
}

// Finder builds the match finder with a fresh scorer and learner.
func (db *Database) Finder(opts ...match.FinderOption) (*match.Finder, error) {
	learner, err := db.Learner()
	if err != nil {
		return nil, err
	}
	scorer, err := db.Scorer()
	if err != nil {
		return nil, err
	}
	opts = append([]match.FinderOption{match.WithFinderLogger(db.logger)}, opts...)
	return match.NewFinder(db.repos.Profiles, learner, scorer, opts...)
}

// Pipeline builds the ingestion pipeline feeding the index and the
// semantic store.
func (db *Database) Pipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	opts = append([]ingestion.Option{ingestion.WithLogger(db.logger)}, opts...)
	return ingestion.NewPipeline(db.repos.Profiles, db.index, db.store, opts...)
}

// Backfiller builds the embedding backfiller, reporting progress to the
// given writer.
func (db *Database) Backfiller(progress io.Writer, opts ...backfill.Option) (*backfill.Backfiller, error) {
	opts = append([]backfill.Option{
		backfill.WithLogger(db.logger),
		backfill.WithProgressWriter(progress),
	}, opts...)
	return backfill.NewBackfiller(db.repos.Profiles, db.store, db.repos.Checkpoints, opts...)
}

// Capabilities reports which retrieval methods are currently usable.
func (db *Database) Capabilities() core.Capabilities {
	available := db.store.Available()
	return core.Capabilities{
		KeywordSearch:  true,
		SemanticSearch: available,
		HybridSearch:   available,
	}
}

// DatabaseStats aggregates profile, index and embedding statistics.
type DatabaseStats struct {
	ActiveProfiles int64
	TotalProfiles  int64
	TopSkills      []core.SkillCount
	Index          core.IndexStats
	Embeddings     core.EmbeddingStats
}

// Stats collects statistics from every storage layer.
func (db *Database) Stats(ctx context.Context) (*DatabaseStats, error) {
	active, total, err := db.repos.Profiles.CountProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting profiles: %w", err)
	}

	skills, err := db.repos.Profiles.TopSkills(ctx, topSkillsLimit)
	if err != nil {
		return nil, fmt.Errorf("aggregating skills: %w", err)
	}

	indexStats, err := db.index.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading index stats: %w", err)
	}

	embeddingStats, err := db.store.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading embedding stats: %w", err)
	}

	return &DatabaseStats{
		ActiveProfiles: active,
		TotalProfiles:  total,
		TopSkills:      skills,
		Index:          *indexStats,
		Embeddings:     embeddingStats,
	}, nil
}
