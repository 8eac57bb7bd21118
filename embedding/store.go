package embedding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/poiesic/peermatch/ai"
	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/storage"
)

// DefaultCacheSize is the number of query vectors kept in the LRU cache.
const DefaultCacheSize = 256

// Config holds the tunable parameters of the embedding store.
type Config struct {
	// Threshold is the primary cosine similarity cutoff for query matches.
	Threshold float32

	// WideningStep lowers the cutoff to Threshold-WideningStep when the
	// primary pass returns fewer than MinResults matches.
	WideningStep float32

	// MinResults is the result floor that triggers threshold widening.
	MinResults int

	// MaxResults caps the number of matches a query returns, widened
	// candidates included.
	MaxResults int

	// MaxContentLen truncates document content, in runes, before it is
	// sent to the provider.
	MaxContentLen int

	// QueryTimeout bounds each provider call.
	QueryTimeout time.Duration
}

// DefaultConfig returns the standard store parameters.
func DefaultConfig() Config {
	return Config{
		Threshold:     0.32,
		WideningStep:  0.05,
		MinResults:    3,
		MaxResults:    6,
		MaxContentLen: 8000,
		QueryTimeout:  10 * time.Second,
	}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Threshold <= 0 || c.Threshold > 1 {
		return errors.New("embedding config: Threshold must be in (0, 1]")
	}
	if c.WideningStep < 0 || c.WideningStep > c.Threshold {
		return errors.New("embedding config: WideningStep must be between 0 and Threshold")
	}
	if c.MinResults < 0 {
		return errors.New("embedding config: MinResults must be non-negative")
	}
	if c.MaxResults < 1 {
		return errors.New("embedding config: MaxResults must be positive")
	}
	if c.MaxResults < c.MinResults {
		return errors.New("embedding config: MaxResults must be at least MinResults")
	}
	if c.MaxContentLen < 1 {
		return errors.New("embedding config: MaxContentLen must be positive")
	}
	if c.QueryTimeout <= 0 {
		return errors.New("embedding config: QueryTimeout must be positive")
	}
	return nil
}

// Store generates, persists and queries profile embeddings. A nil embedder
// is allowed and makes the store report itself unavailable; every other
// collaborator is mandatory.
type Store struct {
	records   storage.EmbeddingRepository
	profiles  storage.ProfileRepository
	embedder  ai.Embedder
	config    Config
	logger    *slog.Logger
	cacheSize int

	// queryCache keeps provider vectors for recently issued queries,
	// keyed by content hash.
	queryCache *lru.Cache[uint64, []float32]
}

// Option configures a Store.
type Option func(*Store) error

// WithConfig replaces the default store parameters.
func WithConfig(config Config) Option {
	return func(s *Store) error {
		if err := config.Validate(); err != nil {
			return err
		}
		s.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithCacheSize sets the size of the query vector cache.
// Default is DefaultCacheSize.
func WithCacheSize(size int) Option {
	return func(s *Store) error {
		if size <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidCacheSize, size)
		}
		s.cacheSize = size
		return nil
	}
}

// NewStore creates a new embedding store. The embedder may be nil, in which
// case Upsert and Query return ErrUnavailable.
func NewStore(
	records storage.EmbeddingRepository,
	profiles storage.ProfileRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Store, error) {
	if records == nil {
		return nil, ErrEmbeddingRepositoryRequired
	}
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}

	s := &Store{
		records:   records,
		profiles:  profiles,
		embedder:  embedder,
		config:    DefaultConfig(),
		logger:    slog.Default(),
		cacheSize: DefaultCacheSize,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	cache, err := lru.New[uint64, []float32](s.cacheSize)
	if err != nil {
		return nil, err
	}
	s.queryCache = cache

	return s, nil
}

// Available reports whether an embedding provider is wired.
func (s *Store) Available() bool {
	return s.embedder != nil
}

// Config returns the store parameters in effect.
func (s *Store) Config() Config {
	return s.config
}

// Upsert generates and persists the embedding for a search document.
// When the stored record already covers identical content the provider is
// not called again; replacing a record keeps its CreatedAt.
func (s *Store) Upsert(ctx context.Context, doc core.SearchDocument) error {
	if s.embedder == nil {
		return ErrUnavailable
	}

	content := truncateRunes(doc.Content, s.config.MaxContentLen)
	hash := core.HashText(content)

	existing, err := s.records.GetEmbedding(ctx, doc.ProfileId)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if existing != nil && existing.ContentHash == hash {
		s.logger.Debug("embedding content unchanged", "profile_id", doc.ProfileId)
		return nil
	}

	vector, err := s.embed(ctx, content)
	if err != nil {
		return fmt.Errorf("embedding profile %d: %w", doc.ProfileId, err)
	}

	record := &core.EmbeddingRecord{
		ProfileId:   doc.ProfileId,
		Email:       doc.Email,
		FullName:    doc.FullName,
		Vector:      vector,
		ContentHash: hash,
	}
	return s.records.UpsertEmbedding(ctx, record)
}

// Query finds the profiles semantically closest to the query text.
// Matches below Threshold but at or above Threshold-WideningStep are
// admitted only while the primary matches number fewer than MinResults;
// the total never exceeds MaxResults. A topk of zero or less falls back
// to MaxResults.
func (s *Store) Query(ctx context.Context, text string, topk int) ([]core.SearchCandidate, error) {
	if s.embedder == nil {
		return nil, ErrUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if topk <= 0 || topk > s.config.MaxResults {
		topk = s.config.MaxResults
	}

	vector, err := s.queryVector(ctx, text)
	if err != nil {
		return nil, err
	}

	floor := s.config.Threshold - s.config.WideningStep
	matches, err := s.records.FindSimilar(ctx, vector, floor, s.config.MaxResults)
	if err != nil {
		return nil, err
	}

	var primary, widened []*core.VectorMatch
	for _, m := range matches {
		if m.Score >= s.config.Threshold {
			primary = append(primary, m)
		} else {
			widened = append(widened, m)
		}
	}

	selected := primary
	if len(selected) > s.config.MaxResults {
		selected = selected[:s.config.MaxResults]
	}
	if len(selected) < s.config.MinResults && len(widened) > 0 {
		extra := min(s.config.MinResults, s.config.MaxResults-len(selected))
		extra = min(extra, len(widened))
		if extra > 0 {
			s.logger.Debug("widened similarity threshold",
				"primary", len(selected), "extra", extra, "floor", floor)
			selected = append(selected, widened[:extra]...)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Score > selected[j].Score
	})
	if len(selected) > topk {
		selected = selected[:topk]
	}

	return s.toCandidates(ctx, selected), nil
}

// Remove deletes the stored embedding for a profile. Removing a missing
// record is not an error.
func (s *Store) Remove(ctx context.Context, id core.ID) error {
	return s.records.DeleteEmbedding(ctx, id)
}

// Stats reports the current state of the embedding store.
func (s *Store) Stats(ctx context.Context) (core.EmbeddingStats, error) {
	count, err := s.records.CountEmbeddings(ctx)
	if err != nil {
		return core.EmbeddingStats{}, err
	}
	latest, err := s.records.LatestEmbeddingUpdate(ctx)
	if err != nil {
		return core.EmbeddingStats{}, err
	}
	return core.EmbeddingStats{
		TotalEmbeddings: count,
		LatestUpdate:    latest,
		Available:       s.Available(),
	}, nil
}

// queryVector resolves the embedding for a query, consulting the LRU cache
// before the provider.
func (s *Store) queryVector(ctx context.Context, text string) ([]float32, error) {
	key := core.HashText(text)
	if vector, ok := s.queryCache.Get(key); ok {
		return vector, nil
	}

	vector, err := s.embed(ctx, text)
	if err != nil {
		return nil, err
	}
	s.queryCache.Add(key, vector)
	return vector, nil
}

// embed calls the provider with the configured timeout.
func (s *Store) embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.QueryTimeout)
	defer cancel()

	vector, err := s.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(vector) == 0 {
		return nil, ErrEmptyVector
	}
	return vector, nil
}

// toCandidates attaches snippets to the selected matches. Profiles that
// cannot be loaded fall back to the terse snippet forms.
func (s *Store) toCandidates(ctx context.Context, matches []*core.VectorMatch) []core.SearchCandidate {
	ids := make([]core.ID, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.Record.ProfileId)
	}

	byID := make(map[core.ID]*core.Profile, len(ids))
	if len(ids) > 0 {
		profs, err := s.profiles.GetProfiles(ctx, ids...)
		if err != nil {
			s.logger.Warn("loading profiles for snippets", "err", err)
		}
		for _, p := range profs {
			byID[p.Id] = p
		}
	}

	candidates := make([]core.SearchCandidate, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, core.SearchCandidate{
			ProfileId: m.Record.ProfileId,
			Email:     m.Record.Email,
			FullName:  m.Record.FullName,
			Snippet:   snippetFor(byID[m.Record.ProfileId], m.Record.ProfileId),
			Score:     float64(m.Score),
		})
	}
	return candidates
}
