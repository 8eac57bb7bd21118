package badger

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/storage"
)

// ProfileRepository implements storage.ProfileRepository for BadgerDB.
type ProfileRepository struct {
	backend *Backend
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(backend *Backend) (*ProfileRepository, error) {
	return &ProfileRepository{
		backend: backend,
	}, nil
}

// Close releases repository resources.
func (r *ProfileRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ProfileRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// UpsertProfiles inserts or replaces one or more profiles.
func (r *ProfileRepository) UpsertProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, profile := range profiles {
			email := strings.ToLower(strings.TrimSpace(profile.Email))
			if email == "" {
				return fmt.Errorf("%w: %w", core.ErrInvalidProfile, core.ErrEmptyEmail)
			}
			profile.Email = email

			// Resolve the ID: adopt the address owner's ID, else derive
			// a fresh one from the address.
			if profile.Id == 0 {
				ownerID, err := r.readEmailIndex(tx, email)
				if err != nil {
					return err
				}
				if ownerID != 0 {
					profile.Id = ownerID
				} else {
					profile.Id = core.IDFromEmail(email)
				}
			}

			key := makeProfileKey(profile.Id)
			old, err := r.readProfile(tx, key)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if old != nil {
				profile.CreatedAt = old.CreatedAt

				// Release the old address if the profile moved to a new one
				if old.Email != email {
					ownerID, err := r.readEmailIndex(tx, email)
					if err != nil {
						return err
					}
					if ownerID != 0 && ownerID != profile.Id {
						return fmt.Errorf("%w: email %s", storage.ErrDuplicateKey, email)
					}
					if err := tx.Delete(makeEmailKey(old.Email)); err != nil {
						return err
					}
				}
			} else {
				ownerID, err := r.readEmailIndex(tx, email)
				if err != nil {
					return err
				}
				if ownerID != 0 && ownerID != profile.Id {
					return fmt.Errorf("%w: email %s", storage.ErrDuplicateKey, email)
				}
				profile.CreatedAt = now
			}

			profile.UpdatedAt = now
			if profile.Status == 0 {
				profile.Status = core.StatusActive
			}

			if err := tx.Set(key, storage.MarshalProfile(profile)); err != nil {
				return err
			}
			if err := tx.Set(makeEmailKey(email), storage.MarshalID(profile.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return profiles, err
}

// GetProfile retrieves a single profile by ID.
func (r *ProfileRepository) GetProfile(ctx context.Context, id core.ID) (*core.Profile, error) {
	var result *core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeProfileKey(id)
		var err error
		result, err = r.readProfile(tx, key)
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

// GetProfileByEmail retrieves a profile by its email address.
func (r *ProfileRepository) GetProfileByEmail(ctx context.Context, email string) (*core.Profile, error) {
	var result *core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		ownerID, err := r.readEmailIndex(tx, email)
		if err != nil {
			return err
		}
		if ownerID == 0 {
			return storage.ErrNotFound
		}

		result, err = r.readProfile(tx, makeProfileKey(ownerID))
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

// GetProfiles retrieves multiple profiles by their IDs.
func (r *ProfileRepository) GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error) {
	var result []*core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			profile, err := r.readProfile(tx, makeProfileKey(id))
			if err != nil {
				return err
			}
			if profile != nil {
				result = append(result, profile)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListActiveProfiles retrieves every profile whose status is active.
func (r *ProfileRepository) ListActiveProfiles(ctx context.Context) ([]*core.Profile, error) {
	var results []*core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profileRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var profile *core.Profile
			err := iter.Item().Value(func(val []byte) error {
				var err error
				profile, err = storage.UnmarshalProfile(val)
				return err
			})
			if err != nil {
				return err
			}
			if profile != nil && profile.Active() {
				results = append(results, profile)
			}
		}
		return nil
	}, false)
	return results, err
}

// DeleteProfile soft-deletes a profile.
func (r *ProfileRepository) DeleteProfile(ctx context.Context, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeProfileKey(id)
		profile, err := r.readProfile(tx, key)
		if err != nil {
			return err
		}
		if profile == nil {
			return storage.ErrNotFound
		}

		profile.Status = core.StatusDeleted
		profile.UpdatedAt = time.Now().UTC()

		if err := tx.Set(key, storage.MarshalProfile(profile)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// CountProfiles returns active and total profile counts.
func (r *ProfileRepository) CountProfiles(ctx context.Context) (active, total int64, err error) {
	err = r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profileRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var profile *core.Profile
			e := iter.Item().Value(func(val []byte) error {
				var err error
				profile, err = storage.UnmarshalProfile(val)
				return err
			})
			if e != nil {
				return e
			}
			total++
			if profile != nil && profile.Active() {
				active++
			}
		}
		return nil
	}, false)
	return active, total, err
}

// TopSkills aggregates technical skill names across active profiles.
func (r *ProfileRepository) TopSkills(ctx context.Context, limit int) ([]core.SkillCount, error) {
	profiles, err := r.ListActiveProfiles(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, profile := range profiles {
		for _, skill := range profile.TechnicalSkills {
			name := strings.TrimSpace(skill.Name)
			if name != "" {
				counts[name]++
			}
		}
	}

	results := make([]core.SkillCount, 0, len(counts))
	for name, count := range counts {
		results = append(results, core.SkillCount{Name: name, Count: count})
	}

	// Most frequent first, ties broken by name for stable output
	slices.SortFunc(results, func(a, b core.SkillCount) int {
		if a.Count != b.Count {
			if a.Count > b.Count {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Helper methods

// readProfile reads a profile from the transaction.
func (r *ProfileRepository) readProfile(tx *badger.Txn, key []byte) (*core.Profile, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var profile *core.Profile
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		profile, unmarshalErr = storage.UnmarshalProfile(val)
		return unmarshalErr
	})
	return profile, err
}

// readEmailIndex resolves an email address to its owning profile ID.
// Returns 0 when the address is unclaimed.
func (r *ProfileRepository) readEmailIndex(tx *badger.Txn, email string) (core.ID, error) {
	item, err := tx.Get(makeEmailKey(email))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return 0, nil
		}
		return 0, err
	}

	var id core.ID
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		id, unmarshalErr = storage.UnmarshalID(val)
		return unmarshalErr
	})
	return id, err
}
