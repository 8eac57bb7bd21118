package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/embedding"
	"github.com/poiesic/peermatch/storage"
)

// Pipeline orchestrates profile ingestion. The profile write is durable
// before Ingest returns; search-index and embedding enrichment run
// asynchronously on worker pools and their failures are logged, never
// surfaced to the caller.
type Pipeline struct {
	profiles  storage.ProfileRepository
	index     storage.SearchIndex
	store     *embedding.Store
	indexPool *ants.Pool
	embedPool *ants.Pool
	indexProc processor
	embedProc processor
	inflight  sync.WaitGroup
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pools
		if p.indexPool != nil {
			p.indexPool.Release()
		}
		if p.embedPool != nil {
			p.embedPool.Release()
		}

		// Create new pools
		indexPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		embedPool, err := ants.NewPool(size)
		if err != nil {
			indexPool.Release()
			return err
		}

		p.indexPool = indexPool
		p.embedPool = embedPool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	profiles storage.ProfileRepository,
	index storage.SearchIndex,
	store *embedding.Store,
	opts ...Option,
) (*Pipeline, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if index == nil {
		return nil, ErrSearchIndexRequired
	}
	if store == nil {
		return nil, ErrEmbeddingStoreRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	indexPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	embedPool, err := ants.NewPool(poolSize)
	if err != nil {
		indexPool.Release()
		return nil, err
	}

	// Create pipeline with defaults
	p := &Pipeline{
		profiles:  profiles,
		index:     index,
		store:     store,
		indexPool: indexPool,
		embedPool: embedPool,
		logger:    slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Close()
			return nil, optErr
		}
	}

	// Create processors after options are applied (so they get final config)
	indexProc, err := newIndexProcessor(profiles, index, p.logger)
	if err != nil {
		p.Close()
		return nil, err
	}

	embedProc, err := newEmbedProcessor(profiles, store, p.logger)
	if err != nil {
		p.Close()
		return nil, err
	}

	p.indexProc = indexProc
	p.embedProc = embedProc

	return p, nil
}

// Ingest validates and stores a profile, then submits it for asynchronous
// enrichment. A zero Id is derived from the email and a zero Status becomes
// active during the upsert. Enrichment errors are logged but do not fail
// the ingestion.
func (p *Pipeline) Ingest(ctx context.Context, profile *core.Profile) error {
	if err := core.ValidateProfile(profile); err != nil {
		return err
	}

	saved, err := p.profiles.UpsertProfiles(ctx, profile)
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		return nil
	}

	p.dispatch(saved[0].Id)
	return nil
}

// Remove soft-deletes a profile and submits it for asynchronous cleanup of
// its search document and embedding.
func (p *Pipeline) Remove(ctx context.Context, id core.ID) error {
	if err := p.profiles.DeleteProfile(ctx, id); err != nil {
		return err
	}

	p.dispatch(id)
	return nil
}

// dispatch hands the ids to both enrichment processors. The tasks run
// detached from the caller's context; the profile write they follow is
// already durable.
func (p *Pipeline) dispatch(ids ...core.ID) {
	p.submit(p.indexPool, func() {
		if err := p.indexProc.process(context.Background(), ids...); err != nil {
			p.logger.Error("error syncing search index", "err", err)
		}
	})

	p.submit(p.embedPool, func() {
		if err := p.embedProc.process(context.Background(), ids...); err != nil {
			p.logger.Error("error syncing embeddings", "err", err)
		}
	})
}

// submit tracks the task so Flush can wait for it. A task rejected by a
// released pool is dropped with an error log.
func (p *Pipeline) submit(pool *ants.Pool, task func()) {
	p.inflight.Add(1)
	err := pool.Submit(func() {
		defer p.inflight.Done()
		task()
	})
	if err != nil {
		p.inflight.Done()
		p.logger.Error("error submitting enrichment task", "err", err)
	}
}

// Flush blocks until every enrichment task submitted so far has finished.
func (p *Pipeline) Flush() {
	p.inflight.Wait()
}

// Close waits for in-flight enrichment and releases the worker pools.
// The pipeline should not be used after calling Close.
func (p *Pipeline) Close() {
	p.inflight.Wait()
	if p.indexPool != nil {
		p.indexPool.Release()
	}
	if p.embedPool != nil {
		p.embedPool.Release()
	}
}
