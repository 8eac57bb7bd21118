package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/embedding"
	"github.com/poiesic/peermatch/storage"
)

// embedProcessor keeps the embedding store in step with profiles.
type embedProcessor struct {
	profiles storage.ProfileRepository
	store    *embedding.Store
	logger   *slog.Logger
}

var _ processor = (*embedProcessor)(nil)

// newEmbedProcessor creates a new embedding processor.
func newEmbedProcessor(profiles storage.ProfileRepository, store *embedding.Store, logger *slog.Logger) (processor, error) {
	if profiles == nil {
		return nil, fmt.Errorf("profile repository required")
	}
	if store == nil {
		return nil, fmt.Errorf("embedding store required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &embedProcessor{
		profiles: profiles,
		store:    store,
		logger:   logger.With("processor", "embeddings"),
	}, nil
}

// process upserts embeddings for active profiles and removes those of
// inactive or missing ones. Upserts are skipped while no embedding
// provider is configured; removals always run so stale vectors cannot
// outlive their profile.
func (ep *embedProcessor) process(ctx context.Context, ids ...core.ID) error {
	ep.logger.Debug("syncing embeddings", "profiles", len(ids))

	var errs []error
	for _, id := range ids {
		profile, err := ep.profiles.GetProfile(ctx, id)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			errs = append(errs, fmt.Errorf("loading profile %d: %w", id, err))
			continue
		}

		if profile == nil || !profile.Active() {
			if err := ep.store.Remove(ctx, id); err != nil {
				errs = append(errs, fmt.Errorf("removing embedding %d: %w", id, err))
			}
			continue
		}

		if !ep.store.Available() {
			continue
		}
		if err := ep.store.Upsert(ctx, core.BuildSearchDocument(profile)); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
