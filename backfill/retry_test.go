package backfill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds on the first attempt", func(t *testing.T) {
		attempts := 0
		err := RetryWithBackoff(ctx, func(context.Context) error {
			attempts++
			return nil
		}, 3, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		attempts := 0
		err := RetryWithBackoff(ctx, func(context.Context) error {
			attempts++
			if attempts < 3 {
				return errors.New("transient")
			}
			return nil
		}, 5, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns the last error when attempts are exhausted", func(t *testing.T) {
		boom := errors.New("boom")
		attempts := 0
		err := RetryWithBackoff(ctx, func(context.Context) error {
			attempts++
			return boom
		}, 2, time.Millisecond)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 2, attempts)
	})

	t.Run("rejects non-positive max attempts", func(t *testing.T) {
		called := false
		err := RetryWithBackoff(ctx, func(context.Context) error {
			called = true
			return nil
		}, 0, time.Millisecond)
		assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
		assert.False(t, called)
	})

	t.Run("does not run on a cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		called := false
		err := RetryWithBackoff(cancelled, func(context.Context) error {
			called = true
			return nil
		}, 3, time.Millisecond)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("cancellation interrupts the backoff sleep", func(t *testing.T) {
		timed, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
		defer cancel()

		attempts := 0
		start := time.Now()
		err := RetryWithBackoff(timed, func(context.Context) error {
			attempts++
			return errors.New("always failing")
		}, 3, 10*time.Second)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 1, attempts)
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("passes the context to the operation", func(t *testing.T) {
		type key struct{}
		tagged := context.WithValue(ctx, key{}, "tagged")

		err := RetryWithBackoff(tagged, func(opCtx context.Context) error {
			assert.Equal(t, "tagged", opCtx.Value(key{}))
			return nil
		}, 1, time.Millisecond)
		require.NoError(t, err)
	})
}
