package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/storage"
)

// Config holds the preference learning parameters.
type Config struct {
	// LearningRate scales how strongly a single swipe shifts the weights.
	LearningRate float64
}

// DefaultConfig returns the standard learning parameters.
func DefaultConfig() Config {
	return Config{
		LearningRate: 0.05,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return errors.New("learner config: LearningRate must be in (0, 1]")
	}
	return nil
}

// Learner adapts per-user feature weights from swipe feedback.
type Learner struct {
	weights  storage.WeightsRepository
	feedback storage.FeedbackRepository
	config   Config
	logger   *slog.Logger

	mu    sync.Mutex
	locks map[core.ID]*sync.Mutex
}

// LearnerOption configures a Learner.
type LearnerOption func(*Learner) error

// WithLearnerLogger sets a custom logger.
// Default is slog.Default().
func WithLearnerLogger(logger *slog.Logger) LearnerOption {
	return func(l *Learner) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// WithLearnerConfig replaces the default learning parameters.
func WithLearnerConfig(config Config) LearnerOption {
	return func(l *Learner) error {
		if err := config.Validate(); err != nil {
			return err
		}
		l.config = config
		return nil
	}
}

// NewLearner creates a new preference learner.
func NewLearner(
	weights storage.WeightsRepository,
	feedback storage.FeedbackRepository,
	opts ...LearnerOption,
) (*Learner, error) {
	if weights == nil {
		return nil, ErrWeightsRepositoryRequired
	}
	if feedback == nil {
		return nil, ErrFeedbackRepositoryRequired
	}

	l := &Learner{
		weights:  weights,
		feedback: feedback,
		config:   DefaultConfig(),
		logger:   slog.Default(),
		locks:    make(map[core.ID]*sync.Mutex),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Config returns the active learning parameters.
func (l *Learner) Config() Config {
	return l.config
}

// WeightsFor returns the user's learned weights, or the defaults when the
// user has no stored weights yet. The returned copy is the caller's own.
func (l *Learner) WeightsFor(ctx context.Context, userID core.ID) (core.FeatureWeights, error) {
	stored, err := l.weights.GetWeights(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return core.DefaultWeightsFor(userID), nil
		}
		return core.FeatureWeights{}, fmt.Errorf("loading weights: %w", err)
	}
	return stored.Clone(), nil
}

// Update folds signed feature feedback into the user's weights: each
// contribution moves its weight by LearningRate, clamped to [0, 1], and
// the result is renormalized to sum 1. Unknown feature names are ignored.
// The read-modify-write is serialized per user; different users proceed
// concurrently.
func (l *Learner) Update(ctx context.Context, userID core.ID, ff []core.FeatureFeedback) (core.FeatureWeights, error) {
	if userID == 0 {
		return core.FeatureWeights{}, ErrUserRequired
	}

	lock := l.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	current, err := l.WeightsFor(ctx, userID)
	if err != nil {
		return core.FeatureWeights{}, err
	}

	for _, fb := range ff {
		weight, ok := current.Weights[fb.Feature]
		if !ok {
			l.logger.Warn("ignoring feedback for unknown feature", "feature", fb.Feature)
			continue
		}
		adjusted := weight + l.config.LearningRate*fb.Contribution
		current.Weights[fb.Feature] = math.Max(0, math.Min(1, adjusted))
	}

	current.Normalize()
	current.UserId = userID
	current.FeedbackCount += int64(len(ff))

	if err := l.weights.PutWeights(ctx, &current); err != nil {
		return core.FeatureWeights{}, fmt.Errorf("persisting weights: %w", err)
	}

	l.logger.Debug("updated preference weights",
		"user", userID, "signals", len(ff), "feedback_count", current.FeedbackCount)

	return current, nil
}

// Record appends a swipe event to the feedback log and folds it into the
// user's weights. Each feature's contribution is the feedback sign
// multiplied by that feature's similarity sub-score at swipe time.
func (l *Learner) Record(ctx context.Context, fb *core.SwipeFeedback) (core.FeatureWeights, error) {
	if err := core.ValidateFeedback(fb); err != nil {
		return core.FeatureWeights{}, err
	}

	if _, err := l.feedback.AddFeedback(ctx, fb); err != nil {
		return core.FeatureWeights{}, fmt.Errorf("recording feedback: %w", err)
	}

	sign := fb.Feedback.Sign()
	ff := make([]core.FeatureFeedback, 0, len(fb.Features))
	for feature, score := range fb.Features {
		ff = append(ff, core.FeatureFeedback{Feature: feature, Contribution: sign * score})
	}

	return l.Update(ctx, fb.UserId, ff)
}

// userLock returns the mutex guarding one user's weights.
func (l *Learner) userLock(userID core.ID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[userID] = lock
	}
	return lock
}
