package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/storage"
)

// WeightsRepository implements storage.WeightsRepository for BadgerDB.
type WeightsRepository struct {
	backend *Backend
}

var _ storage.WeightsRepository = (*WeightsRepository)(nil)

// NewWeightsRepository creates a new WeightsRepository.
func NewWeightsRepository(backend *Backend) (*WeightsRepository, error) {
	return &WeightsRepository{
		backend: backend,
	}, nil
}

// Close releases repository resources.
func (r *WeightsRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *WeightsRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// GetWeights retrieves the learned weights for a user.
func (r *WeightsRepository) GetWeights(ctx context.Context, userID core.ID) (*core.FeatureWeights, error) {
	var result *core.FeatureWeights
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeWeightsKey(userID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalWeights(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// PutWeights inserts or replaces a user's weights.
func (r *WeightsRepository) PutWeights(ctx context.Context, weights *core.FeatureWeights) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		weights.UpdatedAt = time.Now().UTC()
		key := makeWeightsKey(weights.UserId)
		if err := tx.Set(key, storage.MarshalWeights(weights)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
