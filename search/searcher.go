package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/embedding"
	"github.com/poiesic/peermatch/storage"
)

// DefaultTopK is the result count used when the caller does not set one.
const DefaultTopK = 10

const (
	methodKeyword  = "keyword"
	methodSemantic = "semantic"
	methodHybrid   = "hybrid"
)

// Config holds the blending parameters of the hybrid retriever.
type Config struct {
	// KeywordWeight scales the normalized lexical score.
	KeywordWeight float64

	// SemanticWeight scales the normalized semantic score.
	SemanticWeight float64

	// AgreementBoost multiplies the blended score of profiles surfaced
	// by both methods.
	AgreementBoost float64
}

// DefaultConfig returns the standard blending parameters.
func DefaultConfig() Config {
	return Config{
		KeywordWeight:  0.4,
		SemanticWeight: 0.6,
		AgreementBoost: 1.2,
	}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.KeywordWeight < 0 {
		return errors.New("search config: KeywordWeight must be non-negative")
	}
	if c.SemanticWeight < 0 {
		return errors.New("search config: SemanticWeight must be non-negative")
	}
	if c.KeywordWeight+c.SemanticWeight <= 0 {
		return errors.New("search config: method weights must not both be zero")
	}
	if c.AgreementBoost < 1 {
		return errors.New("search config: AgreementBoost must be at least 1")
	}
	return nil
}

// Searcher blends lexical and semantic retrieval over profile documents.
type Searcher struct {
	index  storage.SearchIndex
	store  *embedding.Store
	config Config
	logger *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithConfig replaces the default blending parameters.
func WithConfig(config Config) Option {
	return func(s *Searcher) error {
		if err := config.Validate(); err != nil {
			return err
		}
		s.config = config
		return nil
	}
}

// NewSearcher creates a new searcher. The embedding store is mandatory but
// may be unavailable; the searcher then serves keyword results only.
func NewSearcher(index storage.SearchIndex, store *embedding.Store, opts ...Option) (*Searcher, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}
	if store == nil {
		return nil, ErrEmbeddingStoreRequired
	}

	s := &Searcher{
		index:  index,
		store:  store,
		config: DefaultConfig(),
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Capabilities reports which retrieval methods are currently usable.
func (s *Searcher) Capabilities() core.Capabilities {
	available := s.store.Available()
	return core.Capabilities{
		KeywordSearch:  true,
		SemanticSearch: available,
		HybridSearch:   available,
	}
}

// Search runs a retrieval request and returns ranked hits with metadata.
// Returns up to topk hits; topk of zero or less falls back to DefaultTopK.
func (s *Searcher) Search(ctx context.Context, query string, topk int, useSemantic bool) (*core.SearchResponse, error) {
	return s.SearchWithMonitor(ctx, query, topk, useSemantic, nil)
}

// SearchWithMonitor runs a retrieval request with monitoring. The monitor
// receives callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, topk int, useSemantic bool, monitor SearchMonitor) (*core.SearchResponse, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	started := time.Now()
	monitor.Start(query)

	available := s.store.Available()

	if strings.TrimSpace(query) == "" {
		monitor.Finish(time.Since(started))
		return &core.SearchResponse{
			Query:             query,
			Hits:              []core.SearchHit{},
			SemanticAvailable: available,
		}, nil
	}
	if topk <= 0 {
		topk = DefaultTopK
	}

	resp, err := s.run(ctx, query, topk, useSemantic && available, monitor)
	if err != nil {
		return nil, err
	}
	resp.SemanticAvailable = available

	monitor.Finish(time.Since(started))
	return resp, nil
}

// run dispatches to the keyword-only or hybrid flow and assembles the
// response. hybrid is true only when semantic retrieval was requested and
// an embedding provider is wired.
func (s *Searcher) run(ctx context.Context, query string, topk int, hybrid bool, monitor SearchMonitor) (*core.SearchResponse, error) {
	if !hybrid {
		keywordHits, err := s.index.Search(ctx, query, topk)
		if err != nil {
			return nil, fmt.Errorf("keyword search: %w", err)
		}
		monitor.AfterKeywordSearch(len(keywordHits))
		return s.assemble(query, s.merge(keywordHits, nil), topk,
			[]string{methodKeyword}, methodKeyword, false, "", monitor), nil
	}

	// The two lookups are independent; run them concurrently and decide
	// afterwards which signals survived.
	var (
		keywordHits  []*core.SearchCandidate
		keywordErr   error
		semanticHits []core.SearchCandidate
		semanticErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		keywordHits, keywordErr = s.index.Search(gctx, query, topk)
		return nil
	})
	g.Go(func() error {
		semanticHits, semanticErr = s.store.Query(gctx, query, topk)
		return nil
	})
	_ = g.Wait()

	switch {
	case semanticErr != nil && keywordErr != nil:
		return nil, fmt.Errorf("keyword search: %w", keywordErr)

	case semanticErr != nil:
		monitor.AfterKeywordSearch(len(keywordHits))
		s.logger.Warn("semantic search failed, falling back to keyword results",
			"query", query, "err", semanticErr)
		return s.assemble(query, s.merge(keywordHits, nil), topk,
			[]string{methodKeyword}, methodKeyword, true, semanticErr.Error(), monitor), nil

	case keywordErr != nil:
		monitor.AfterSemanticSearch(len(semanticHits))
		s.logger.Warn("keyword search failed, serving semantic results only",
			"query", query, "err", keywordErr)
		return s.assemble(query, s.merge(nil, semanticHits), topk,
			[]string{methodSemantic}, methodSemantic, true, keywordErr.Error(), monitor), nil
	}

	monitor.AfterKeywordSearch(len(keywordHits))
	monitor.AfterSemanticSearch(len(semanticHits))

	if len(semanticHits) == 0 {
		s.logger.Debug("semantic search returned no candidates, serving keyword results",
			"query", query)
		return s.assemble(query, s.merge(keywordHits, nil), topk,
			[]string{methodKeyword}, methodKeyword, false, "", monitor), nil
	}

	return s.assemble(query, s.merge(keywordHits, semanticHits), topk,
		[]string{methodKeyword, methodSemantic}, methodHybrid, false, "", monitor), nil
}

// merge blends the two candidate lists into ranked hits. Scores are
// normalized per method before weighting; profiles surfaced by both
// methods get the agreement boost and keep the keyword snippet.
func (s *Searcher) merge(keyword []*core.SearchCandidate, semantic []core.SearchCandidate) []core.SearchHit {
	keywordScores := make([]float64, len(keyword))
	for i, c := range keyword {
		keywordScores[i] = c.Score
	}
	semanticScores := make([]float64, len(semantic))
	for i, c := range semantic {
		semanticScores[i] = c.Score
	}
	keywordNorm := NormalizeScores(keywordScores, 1.0)
	semanticNorm := NormalizeScores(semanticScores, 1.0)

	merged := make(map[core.ID]*core.SearchHit, len(keyword)+len(semantic))
	order := make([]core.ID, 0, len(keyword)+len(semantic))

	for i, c := range keyword {
		hit := &core.SearchHit{
			ProfileId:    c.ProfileId,
			Email:        c.Email,
			FullName:     c.FullName,
			Snippet:      c.Snippet,
			KeywordScore: keywordNorm[i],
			Methods:      []string{methodKeyword},
		}
		merged[c.ProfileId] = hit
		order = append(order, c.ProfileId)
	}

	for i, c := range semantic {
		if hit, ok := merged[c.ProfileId]; ok {
			hit.SemanticScore = semanticNorm[i]
			hit.Methods = append(hit.Methods, methodSemantic)
			if hit.Snippet == "" {
				hit.Snippet = c.Snippet
			}
			continue
		}
		hit := &core.SearchHit{
			ProfileId:     c.ProfileId,
			Email:         c.Email,
			FullName:      c.FullName,
			Snippet:       c.Snippet,
			SemanticScore: semanticNorm[i],
			Methods:       []string{methodSemantic},
		}
		merged[c.ProfileId] = hit
		order = append(order, c.ProfileId)
	}

	hits := make([]core.SearchHit, 0, len(order))
	for _, id := range order {
		hit := merged[id]
		final := hit.KeywordScore*s.config.KeywordWeight +
			hit.SemanticScore*s.config.SemanticWeight
		if len(hit.Methods) > 1 {
			final *= s.config.AgreementBoost
		}
		hit.FinalScore = final
		hits = append(hits, *hit)
	}

	// Stable sort keeps keyword-first insertion order for tied scores.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].FinalScore > hits[j].FinalScore
	})
	return hits
}

// assemble finalizes a response: fires the merge callback, records the
// pre-truncation total and cuts the hit list to topk.
func (s *Searcher) assemble(query string, hits []core.SearchHit, topk int, methods []string, method string, fallback bool, reason string, monitor SearchMonitor) *core.SearchResponse {
	monitor.AfterMerge(len(hits))

	total := len(hits)
	if len(hits) > topk {
		hits = hits[:topk]
	}

	return &core.SearchResponse{
		Query:          query,
		Hits:           hits,
		TotalFound:     total,
		MethodsUsed:    methods,
		SearchMethod:   method,
		FallbackUsed:   fallback,
		FallbackReason: reason,
	}
}
