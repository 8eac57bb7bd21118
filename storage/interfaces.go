package storage

import (
	"context"
	"time"

	"github.com/poiesic/peermatch/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ProfileRepository provides operations for managing student profiles.
type ProfileRepository interface {
	Repository
	// UpsertProfiles inserts or replaces one or more profiles.
	// For profiles with ID=0, derives the ID from the email address.
	// Sets CreatedAt on insert and UpdatedAt on every write; a zero
	// Status becomes StatusActive.
	// Returns ErrDuplicateKey if a profile's email already belongs to a
	// different profile.
	// Returns the profiles with IDs and timestamps populated.
	UpsertProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error)

	// GetProfile retrieves a single profile by ID.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfile(ctx context.Context, id core.ID) (*core.Profile, error)

	// GetProfileByEmail retrieves a profile by its email address.
	// The lookup is case-insensitive.
	// Returns ErrNotFound if no profile owns the address.
	GetProfileByEmail(ctx context.Context, email string) (*core.Profile, error)

	// GetProfiles retrieves multiple profiles by their IDs.
	// Returns only the profiles that exist (no error for missing profiles).
	GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error)

	// ListActiveProfiles retrieves every profile whose status is active.
	ListActiveProfiles(ctx context.Context) ([]*core.Profile, error)

	// DeleteProfile soft-deletes a profile. The record is kept with
	// StatusDeleted so the email stays claimed; it no longer appears in
	// ListActiveProfiles.
	// Returns ErrNotFound if the profile doesn't exist.
	DeleteProfile(ctx context.Context, id core.ID) error

	// CountProfiles returns the number of active profiles and the total
	// number of profile records including soft-deleted ones.
	CountProfiles(ctx context.Context) (active, total int64, err error)

	// TopSkills aggregates technical skill names across active profiles,
	// most frequent first, up to limit entries.
	TopSkills(ctx context.Context, limit int) ([]core.SkillCount, error)
}

// EmbeddingRepository provides operations for managing embedding records.
type EmbeddingRepository interface {
	Repository
	// UpsertEmbedding inserts or fully replaces the embedding record for
	// a profile. Sets CreatedAt on insert and UpdatedAt on every write.
	UpsertEmbedding(ctx context.Context, record *core.EmbeddingRecord) error

	// GetEmbedding retrieves the embedding record for a profile.
	// Returns ErrNotFound if no record exists.
	GetEmbedding(ctx context.Context, profileID core.ID) (*core.EmbeddingRecord, error)

	// DeleteEmbedding removes the embedding record for a profile.
	// Deleting a missing record is not an error.
	DeleteEmbedding(ctx context.Context, profileID core.ID) error

	// FindSimilar finds embedding records similar to the given vector.
	// Returns records with cosine similarity >= minSimilarity, up to limit
	// results, ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.VectorMatch, error)

	// CountEmbeddings returns the number of stored embedding records.
	CountEmbeddings(ctx context.Context) (int64, error)

	// LatestEmbeddingUpdate returns the most recent UpdatedAt across all
	// embedding records, or the zero time when the store is empty.
	LatestEmbeddingUpdate(ctx context.Context) (time.Time, error)
}

// FeedbackRepository provides append-only storage for swipe feedback.
type FeedbackRepository interface {
	Repository
	// AddFeedback appends one or more feedback events.
	// Generates event IDs from a sequence and sets CreatedAt if unset.
	// Returns the events with IDs and timestamps populated.
	AddFeedback(ctx context.Context, events ...*core.SwipeFeedback) ([]*core.SwipeFeedback, error)

	// GetFeedbackByUser retrieves every event recorded by a user, in
	// insertion order.
	GetFeedbackByUser(ctx context.Context, userID core.ID) ([]*core.SwipeFeedback, error)

	// GetFeedbackBySession retrieves a user's events for one swipe
	// session, in insertion order.
	GetFeedbackBySession(ctx context.Context, userID core.ID, sessionID string) ([]*core.SwipeFeedback, error)

	// GetFeedbackForTarget retrieves every event whose matched user is the
	// given profile, in insertion order. Used to answer "who liked me".
	GetFeedbackForTarget(ctx context.Context, matchedUserID core.ID) ([]*core.SwipeFeedback, error)

	// CountFeedback returns the total number of stored events.
	CountFeedback(ctx context.Context) (int64, error)
}

// WeightsRepository stores per-user similarity feature weights.
type WeightsRepository interface {
	Repository
	// GetWeights retrieves the learned weights for a user.
	// Returns ErrNotFound if the user has no stored weights yet.
	GetWeights(ctx context.Context, userID core.ID) (*core.FeatureWeights, error)

	// PutWeights inserts or replaces a user's weights.
	// Sets UpdatedAt on every write.
	PutWeights(ctx context.Context, weights *core.FeatureWeights) error
}

// CheckpointRepository persists resumable progress for background processors.
type CheckpointRepository interface {
	// SaveCheckpoint persists a checkpoint for a processor type.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint for a processor type.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, processorType string) (*core.Checkpoint, error)

	// ClearCheckpoint removes the checkpoint for a processor type.
	// Clearing a missing checkpoint is not an error.
	ClearCheckpoint(ctx context.Context, processorType string) error
}

// SearchIndex provides full-text indexing and retrieval over search
// documents. One entry per active profile.
type SearchIndex interface {
	// Index inserts or fully replaces the document for a profile.
	// Replacement removes the old full-text postings before reinserting,
	// so repeated identical calls are idempotent.
	Index(ctx context.Context, doc *core.SearchDocument) error

	// Remove deletes a profile's document from the index.
	// Removing a missing document is not an error.
	Remove(ctx context.Context, profileID core.ID) error

	// Search runs a full-text query and returns ranked candidates with
	// highlighted snippets, up to limit results.
	Search(ctx context.Context, query string, limit int) ([]*core.SearchCandidate, error)

	// Stats describes the current index contents.
	Stats(ctx context.Context) (*core.IndexStats, error)

	// Close releases the underlying database.
	Close() error
}
