package badger

import (
	"errors"

	"github.com/poiesic/peermatch/storage"
)

// Repositories bundles every BadgerDB repository over one shared backend.
type Repositories struct {
	Profiles    storage.ProfileRepository
	Embeddings  storage.EmbeddingRepository
	Feedback    storage.FeedbackRepository
	Weights     storage.WeightsRepository
	Checkpoints storage.CheckpointRepository

	backend *Backend
}

// OpenRepositories opens a BadgerDB database and constructs a repository
// for each record family over it. Pass inMemory=true for tests.
func OpenRepositories(filePath string, inMemory bool) (*Repositories, error) {
	backend, err := OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}

	profiles, err := NewProfileRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	embeddings, err := NewEmbeddingRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	feedback, err := NewFeedbackRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	weights, err := NewWeightsRepository(backend)
	if err != nil {
		feedback.Close()
		backend.Close()
		return nil, err
	}

	return &Repositories{
		Profiles:    profiles,
		Embeddings:  embeddings,
		Feedback:    feedback,
		Weights:     weights,
		Checkpoints: NewCheckpointRepository(backend),
		backend:     backend,
	}, nil
}

// Backend exposes the shared backend, mainly for maintenance commands.
func (r *Repositories) Backend() *Backend {
	return r.backend
}

// Close releases every repository and then the backend.
func (r *Repositories) Close() error {
	errs := []error{
		r.Profiles.Close(),
		r.Embeddings.Close(),
		r.Feedback.Close(),
		r.Weights.Close(),
	}
	errs = append(errs, r.backend.Close())
	return errors.Join(errs...)
}
