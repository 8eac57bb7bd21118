package backfill

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/peermatch/core"
)

func TestNewProfileIterator(t *testing.T) {
	repos := newBackfillRepos(t)

	it := NewProfileIterator(repos.Profiles, 7)
	assert.Equal(t, 7, it.batchSize)

	it = NewProfileIterator(repos.Profiles, 0)
	assert.Equal(t, DefaultBatchSize, it.batchSize)

	it = NewProfileIterator(repos.Profiles, -3)
	assert.Equal(t, DefaultBatchSize, it.batchSize)
}

func TestProfileIteratorPending(t *testing.T) {
	ctx := context.Background()
	repos := newBackfillRepos(t)
	students := seedStudents(t, repos, 5)
	it := NewProfileIterator(repos.Profiles, 2)

	t.Run("returns all active profiles in id order", func(t *testing.T) {
		pending, err := it.Pending(ctx, 0)
		require.NoError(t, err)
		require.Len(t, pending, 5)
		for i, profile := range pending {
			assert.Equal(t, students[i].Id, profile.Id)
		}
	})

	t.Run("filters ids at or below the watermark", func(t *testing.T) {
		pending, err := it.Pending(ctx, students[1].Id)
		require.NoError(t, err)
		require.Len(t, pending, 3)
		assert.Equal(t, students[2].Id, pending[0].Id)
	})

	t.Run("excludes deleted profiles", func(t *testing.T) {
		require.NoError(t, repos.Profiles.DeleteProfile(ctx, students[4].Id))
		pending, err := it.Pending(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, pending, 4)
	})
}

func TestProfileIteratorForEachBatch(t *testing.T) {
	ctx := context.Background()
	repos := newBackfillRepos(t)
	students := seedStudents(t, repos, 5)
	it := NewProfileIterator(repos.Profiles, 2)

	t.Run("splits the population into batches", func(t *testing.T) {
		var sizes []int
		var visited []core.ID
		err := it.ForEachBatch(ctx, 0, func(batch []*core.Profile) error {
			sizes = append(sizes, len(batch))
			for _, profile := range batch {
				visited = append(visited, profile.Id)
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 2, 1}, sizes)

		require.Len(t, visited, 5)
		for i, id := range visited {
			assert.Equal(t, students[i].Id, id)
		}
	})

	t.Run("applies the watermark", func(t *testing.T) {
		var visited []core.ID
		err := it.ForEachBatch(ctx, students[2].Id, func(batch []*core.Profile) error {
			for _, profile := range batch {
				visited = append(visited, profile.Id)
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []core.ID{students[3].Id, students[4].Id}, visited)
	})

	t.Run("stops on the first error from fn", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		err := it.ForEachBatch(ctx, 0, func(batch []*core.Profile) error {
			calls++
			if calls == 2 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 2, calls)
	})

	t.Run("does not start on a cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		calls := 0
		err := it.ForEachBatch(cancelled, 0, func(batch []*core.Profile) error {
			calls++
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls)
	})

	t.Run("stops between batches on cancellation", func(t *testing.T) {
		cancellable, cancel := context.WithCancel(ctx)
		defer cancel()

		calls := 0
		err := it.ForEachBatch(cancellable, 0, func(batch []*core.Profile) error {
			calls++
			cancel()
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("empty population never invokes fn", func(t *testing.T) {
		empty := newBackfillRepos(t)
		emptyIt := NewProfileIterator(empty.Profiles, 2)

		calls := 0
		err := emptyIt.ForEachBatch(ctx, 0, func(batch []*core.Profile) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Zero(t, calls)
	})
}
