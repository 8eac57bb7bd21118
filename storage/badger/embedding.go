package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/storage"
)

// EmbeddingRepository implements storage.EmbeddingRepository for BadgerDB.
type EmbeddingRepository struct {
	backend *Backend
}

var _ storage.EmbeddingRepository = (*EmbeddingRepository)(nil)

// NewEmbeddingRepository creates a new EmbeddingRepository.
func NewEmbeddingRepository(backend *Backend) (*EmbeddingRepository, error) {
	return &EmbeddingRepository{
		backend: backend,
	}, nil
}

// Close releases repository resources.
func (r *EmbeddingRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *EmbeddingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// FindSimilar delegates to the backend.
func (r *EmbeddingRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.VectorMatch, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// UpsertEmbedding inserts or fully replaces the embedding record for a profile.
func (r *EmbeddingRepository) UpsertEmbedding(ctx context.Context, record *core.EmbeddingRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeEmbeddingKey(record.ProfileId)

		old, err := r.readEmbedding(tx, key)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if old != nil {
			record.CreatedAt = old.CreatedAt
		} else {
			record.CreatedAt = now
		}
		record.UpdatedAt = now

		if err := tx.Set(key, storage.MarshalEmbeddingRecord(record)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetEmbedding retrieves the embedding record for a profile.
func (r *EmbeddingRepository) GetEmbedding(ctx context.Context, profileID core.ID) (*core.EmbeddingRecord, error) {
	var result *core.EmbeddingRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readEmbedding(tx, makeEmbeddingKey(profileID))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// DeleteEmbedding removes the embedding record for a profile.
func (r *EmbeddingRepository) DeleteEmbedding(ctx context.Context, profileID core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeEmbeddingKey(profileID)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// CountEmbeddings returns the number of stored embedding records.
func (r *EmbeddingRepository) CountEmbeddings(ctx context.Context) (int64, error) {
	var count int64
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(embeddingRecordPrefix + ":")
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

// LatestEmbeddingUpdate returns the most recent UpdatedAt across all records.
func (r *EmbeddingRepository) LatestEmbeddingUpdate(ctx context.Context) (time.Time, error) {
	var latest time.Time
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(embeddingRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.EmbeddingRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalEmbeddingRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record != nil && record.UpdatedAt.After(latest) {
				latest = record.UpdatedAt
			}
		}
		return nil
	}, false)
	return latest, err
}

// readEmbedding reads an embedding record from the transaction.
func (r *EmbeddingRepository) readEmbedding(tx *badger.Txn, key []byte) (*core.EmbeddingRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.EmbeddingRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalEmbeddingRecord(val)
		return unmarshalErr
	})
	return record, err
}
