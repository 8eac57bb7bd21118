package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/storage"
)

// FeedbackRepository implements storage.FeedbackRepository for BadgerDB.
// Feedback is append-only; events are never updated or deleted.
type FeedbackRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.FeedbackRepository = (*FeedbackRepository)(nil)

// NewFeedbackRepository creates a new FeedbackRepository.
func NewFeedbackRepository(backend *Backend) (*FeedbackRepository, error) {
	idSeq, err := backend.GetSequence(feedbackIDSeq)
	if err != nil {
		return nil, err
	}

	return &FeedbackRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *FeedbackRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *FeedbackRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddFeedback appends one or more feedback events.
func (r *FeedbackRepository) AddFeedback(ctx context.Context, events ...*core.SwipeFeedback) ([]*core.SwipeFeedback, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, event := range events {
			if err := core.ValidateFeedback(event); err != nil {
				return err
			}

			// Always generate new ID from sequence
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			event.Id = nextID

			if event.CreatedAt.IsZero() {
				event.CreatedAt = time.Now().UTC()
			}

			// Store primary record
			key := makeFeedbackKey(event.Id)
			if err := tx.Set(key, storage.MarshalFeedback(event)); err != nil {
				return err
			}

			// Update by-user index
			userKey := makeFeedbackUserKey(event.UserId, event.Id)
			if err := tx.Set(userKey, storage.MarshalID(core.ID(event.Id))); err != nil {
				return err
			}

			// Update by-target index
			targetKey := makeFeedbackTargetKey(event.MatchedUserId, event.Id)
			if err := tx.Set(targetKey, storage.MarshalID(core.ID(event.Id))); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return events, err
}

// GetFeedbackByUser retrieves every event recorded by a user.
func (r *FeedbackRepository) GetFeedbackByUser(ctx context.Context, userID core.ID) ([]*core.SwipeFeedback, error) {
	return r.scanIndex(makePartialFeedbackUserKey(userID), nil)
}

// GetFeedbackBySession retrieves a user's events for one swipe session.
func (r *FeedbackRepository) GetFeedbackBySession(ctx context.Context, userID core.ID, sessionID string) ([]*core.SwipeFeedback, error) {
	return r.scanIndex(makePartialFeedbackUserKey(userID), func(event *core.SwipeFeedback) bool {
		return event.SessionId == sessionID
	})
}

// GetFeedbackForTarget retrieves every event whose matched user is the given profile.
func (r *FeedbackRepository) GetFeedbackForTarget(ctx context.Context, matchedUserID core.ID) ([]*core.SwipeFeedback, error) {
	return r.scanIndex(makePartialFeedbackTargetKey(matchedUserID), nil)
}

// CountFeedback returns the total number of stored events.
func (r *FeedbackRepository) CountFeedback(ctx context.Context) (int64, error) {
	var count int64
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(feedbackRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// scanIndex walks a composite index prefix and loads the referenced
// events in insertion order, optionally filtered by keep.
func (r *FeedbackRepository) scanIndex(startKey []byte, keep func(*core.SwipeFeedback) bool) ([]*core.SwipeFeedback, error) {
	var results []*core.SwipeFeedback
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			// Check if key still has our prefix
			if len(key) < len(startKey) {
				break
			}
			if slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			// Read the event ID from the index
			var eventID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				eventID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full event
			event, err := r.readFeedback(tx, makeFeedbackKey(uint64(eventID)))
			if err != nil {
				return err
			}
			if event == nil {
				continue
			}
			if keep == nil || keep(event) {
				results = append(results, event)
			}
		}
		return nil
	}, false)

	return results, err
}

// readFeedback reads a feedback event from the transaction.
func (r *FeedbackRepository) readFeedback(tx *badger.Txn, key []byte) (*core.SwipeFeedback, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var event *core.SwipeFeedback
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		event, unmarshalErr = storage.UnmarshalFeedback(val)
		return unmarshalErr
	})
	return event, err
}
