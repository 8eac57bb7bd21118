package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/storage"
)

// indexProcessor keeps the lexical search index in step with profiles.
type indexProcessor struct {
	profiles storage.ProfileRepository
	index    storage.SearchIndex
	logger   *slog.Logger
}

var _ processor = (*indexProcessor)(nil)

// newIndexProcessor creates a new index processor.
func newIndexProcessor(profiles storage.ProfileRepository, index storage.SearchIndex, logger *slog.Logger) (processor, error) {
	if profiles == nil {
		return nil, fmt.Errorf("profile repository required")
	}
	if index == nil {
		return nil, fmt.Errorf("search index required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &indexProcessor{
		profiles: profiles,
		index:    index,
		logger:   logger.With("processor", "index"),
	}, nil
}

// process reindexes active profiles and removes inactive or missing ones.
// Per-profile failures are collected so one bad record cannot block the rest.
func (ip *indexProcessor) process(ctx context.Context, ids ...core.ID) error {
	ip.logger.Debug("syncing search documents", "profiles", len(ids))

	var errs []error
	for _, id := range ids {
		profile, err := ip.profiles.GetProfile(ctx, id)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			errs = append(errs, fmt.Errorf("loading profile %d: %w", id, err))
			continue
		}

		if profile == nil || !profile.Active() {
			if err := ip.index.Remove(ctx, id); err != nil {
				errs = append(errs, fmt.Errorf("removing document %d: %w", id, err))
			}
			continue
		}

		doc := core.BuildSearchDocument(profile)
		if err := ip.index.Index(ctx, &doc); err != nil {
			errs = append(errs, fmt.Errorf("indexing profile %d: %w", id, err))
		}
	}

	return errors.Join(errs...)
}
