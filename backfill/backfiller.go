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


package backfill

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/embedding"
	"github.com/poiesic/peermatch/storage"
	"golang.org/x/time/rate"
)

// checkpointName keys the backfill checkpoint in the checkpoint repository.
const checkpointName = "embed-backfill"

// Config holds configuration for the backfill operation.
type Config struct {
	// BatchSize is the number of profiles between checkpoint saves
	BatchSize int

	// ReportInterval is how often to report progress (number of profiles)
	ReportInterval int

	// MaxRetries is the maximum number of attempts for a failing embedding
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// ProviderDelay is the minimum spacing between provider calls
	ProviderDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
		ProviderDelay:  500 * time.Millisecond,
	}
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	if c.BatchSize < 1 {
		return fmt.Errorf("batch size must be positive: %d", c.BatchSize)
	}
	if c.ReportInterval < 1 {
		return fmt.Errorf("report interval must be positive: %d", c.ReportInterval)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("max retries must be positive: %d", c.MaxRetries)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must not be negative: %v", c.RetryDelay)
	}
	if c.ProviderDelay < 0 {
		return fmt.Errorf("provider delay must not be negative: %v", c.ProviderDelay)
	}
	return nil
}

// Backfiller embeds every active profile that does not have an up-to-date
// embedding, resuming from a checkpoint when a previous run was interrupted.
type Backfiller struct {
	profiles    storage.ProfileRepository
	store       *embedding.Store
	checkpoints storage.CheckpointRepository
	iterator    *ProfileIterator
	limiter     *rate.Limiter
	config      Config
	progress    io.Writer
	logger      *slog.Logger
}

// Option configures a Backfiller.
type Option func(*Backfiller) error

// WithConfig replaces the default configuration.
func WithConfig(config Config) Option {
	return func(b *Backfiller) error {
		if err := config.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		b.config = config
		return nil
	}
}

// WithProgressWriter sets where progress output is written, typically
// os.Stderr. Default is io.Discard.
func WithProgressWriter(w io.Writer) Option {
	return func(b *Backfiller) error {
		if w == nil {
			w = io.Discard
		}
		b.progress = w
		return nil
	}
}

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Backfiller) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBackfiller creates a backfiller over the given repositories.
func NewBackfiller(
	profiles storage.ProfileRepository,
	store *embedding.Store,
	checkpoints storage.CheckpointRepository,
	opts ...Option,
) (*Backfiller, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if store == nil {
		return nil, ErrEmbeddingStoreRequired
	}
	if checkpoints == nil {
		return nil, ErrCheckpointRepositoryRequired
	}

	// Create backfiller with defaults
	b := &Backfiller{
		profiles:    profiles,
		store:       store,
		checkpoints: checkpoints,
		config:      DefaultConfig(),
		progress:    io.Discard,
		logger:      slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	// Create the iterator and rate limiter after options are applied
	// (so they get final config)
	b.iterator = NewProfileIterator(profiles, b.config.BatchSize)
	b.limiter = rate.NewLimiter(rate.Every(b.config.ProviderDelay), 1)

	return b, nil
}

// Config returns the active configuration.
func (b *Backfiller) Config() Config {
	return b.config
}

// Reset discards the saved checkpoint so the next Run starts from the
// beginning of the profile population.
func (b *Backfiller) Reset(ctx context.Context) error {
	return b.checkpoints.ClearCheckpoint(ctx, checkpointName)
}

// Run executes the backfill operation.
//
// Active profiles are visited in ascending id order. A profile whose
// embedding fails after all retries is logged and skipped; it will be
// picked up again by a later run. Progress is checkpointed after every
// batch, and the checkpoint is cleared once the population is covered.
func (b *Backfiller) Run(ctx context.Context) error {
	if !b.store.Available() {
		return embedding.ErrUnavailable
	}

	checkpoint, err := b.checkpoints.LoadCheckpoint(ctx, checkpointName)
	if err != nil {
		return fmt.Errorf("loading checkpoint: %w", err)
	}

	var resumeAfter core.ID
	var processed int64
	if checkpoint != nil {
		resumeAfter = checkpoint.LastProfileId
		processed = checkpoint.Processed
	}

	pending, err := b.iterator.Pending(ctx, resumeAfter)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		fmt.Fprintf(b.progress, "No profiles pending embedding (0 profiles)\n")
		return b.checkpoints.ClearCheckpoint(ctx, checkpointName)
	}

	fmt.Fprintf(b.progress, "Starting embedding backfill of %d profiles (batch size: %d)\n",
		len(pending), b.config.BatchSize)
	if checkpoint != nil {
		fmt.Fprintf(b.progress, "Resuming after profile %d (%d processed in earlier runs)\n",
			resumeAfter, processed)
	}

	// Initialize progress tracker
	tracker := NewProgressTracker(b.progress, len(pending), b.config.ReportInterval)
	tracker.Start()

	lastId := resumeAfter

	// Process all pending profiles in batches
	err = b.iterator.ForEachBatch(ctx, resumeAfter, func(batch []*core.Profile) error {
		for _, profile := range batch {
			// Space out provider calls
			if err := b.limiter.Wait(ctx); err != nil {
				return err
			}

			doc := core.BuildSearchDocument(profile)
			err := RetryWithBackoff(ctx, func(ctx context.Context) error {
				return b.store.Upsert(ctx, doc)
			}, b.config.MaxRetries, b.config.RetryDelay)
			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				b.logger.Error("skipping profile after repeated embedding failures",
					"profile_id", profile.Id,
					"attempts", b.config.MaxRetries,
					"error", err)
				tracker.Skip()
			} else {
				tracker.Increment(1)
			}

			lastId = profile.Id
			processed++
		}

		// Persist progress at the batch boundary so an interrupted run
		// resumes here
		return b.saveCheckpoint(ctx, lastId, processed)
	})

	if err != nil {
		return err
	}

	// Finish progress tracking
	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(b.progress, "Backfill complete. Processed %d profiles in %v (%.1f profiles/sec), skipped %d\n",
		len(pending), elapsed.Round(time.Second), float64(len(pending))/elapsed.Seconds(), tracker.Skipped())

	return b.checkpoints.ClearCheckpoint(ctx, checkpointName)
}

func (b *Backfiller) saveCheckpoint(ctx context.Context, lastId core.ID, processed int64) error {
	checkpoint := &core.Checkpoint{
		ProcessorType: checkpointName,
		LastProfileId: lastId,
		Processed:     processed,
	}
	if err := b.checkpoints.SaveCheckpoint(ctx, checkpoint); err != nil {
		return fmt.Errorf("saving checkpoint: %w", err)
	}
	return nil
}
