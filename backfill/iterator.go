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
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/storage"
)

const (
	// DefaultBatchSize is the default number of profiles to process in each batch
	DefaultBatchSize = 100
)

// ProfileIterator iterates over the active profile population in batches,
// in ascending id order.
type ProfileIterator struct {
	profiles  storage.ProfileRepository
	batchSize int
}

// NewProfileIterator creates a new profile iterator.
// batchSize: number of profiles in each batch (must be > 0)
func NewProfileIterator(profiles storage.ProfileRepository, batchSize int) *ProfileIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &ProfileIterator{
		profiles:  profiles,
		batchSize: batchSize,
	}
}

// Pending returns a snapshot of the active profiles with an id above after,
// sorted by id. The stable order is what lets an interrupted run resume
// from a checkpointed id.
func (it *ProfileIterator) Pending(ctx context.Context, after core.ID) ([]*core.Profile, error) {
	profiles, err := it.profiles.ListActiveProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active profiles: %w", err)
	}

	pending := make([]*core.Profile, 0, len(profiles))
	for _, profile := range profiles {
		if profile.Id > after {
			pending = append(pending, profile)
		}
	}

	slices.SortFunc(pending, func(a, b *core.Profile) int {
		return cmp.Compare(a.Id, b.Id)
	})

	return pending, nil
}

// ForEachBatch iterates over the pending profiles, calling fn for each batch.
// Iteration stops on first error from fn or when all profiles are processed.
// Context cancellation is checked between batches.
func (it *ProfileIterator) ForEachBatch(ctx context.Context, after core.ID, fn func([]*core.Profile) error) error {
	// Check context before starting
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	pending, err := it.Pending(ctx, after)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		// No profiles to process
		return nil
	}

	// Process profiles in batches of batchSize
	for i := 0; i < len(pending); i += it.batchSize {
		end := i + it.batchSize
		if end > len(pending) {
			end = len(pending)
		}

		batch := pending[i:end]

		// Call user function with batch
		if err := fn(batch); err != nil {
			return err
		}

		// Check context after each batch
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
