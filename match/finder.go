package match

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/scoring"
	"github.com/poiesic/peermatch/storage"
)

const (
	// DefaultLimit is the match count used when FindOptions leaves it unset.
	DefaultLimit = 10

	// DefaultMinSimilarity is the score floor used when FindOptions leaves
	// it unset.
	DefaultMinSimilarity = 0.2
)

// FindOptions controls one match scan. Zero values mean the defaults.
type FindOptions struct {
	Limit         int
	MinSimilarity float64
}

func (o FindOptions) normalize() FindOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.MinSimilarity <= 0 {
		o.MinSimilarity = DefaultMinSimilarity
	}
	return o
}

// Finder ranks candidate profiles against a user with the user's learned
// weights.
type Finder struct {
	profiles storage.ProfileRepository
	learner  *Learner
	scorer   *scoring.Scorer
	logger   *slog.Logger
}

// FinderOption configures a Finder.
type FinderOption func(*Finder) error

// WithFinderLogger sets a custom logger.
// Default is slog.Default().
func WithFinderLogger(logger *slog.Logger) FinderOption {
	return func(f *Finder) error {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
		return nil
	}
}

// NewFinder creates a new match finder.
func NewFinder(
	profiles storage.ProfileRepository,
	learner *Learner,
	scorer *scoring.Scorer,
	opts ...FinderOption,
) (*Finder, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if learner == nil {
		return nil, ErrLearnerRequired
	}
	if scorer == nil {
		return nil, ErrScorerRequired
	}

	f := &Finder{
		profiles: profiles,
		learner:  learner,
		scorer:   scorer,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// FindMatches scans every active profile, scores each against the user
// with the user's current weights, and returns the best matches above the
// similarity floor, highest first. The scan is a point-in-time snapshot;
// a single candidate failing to score is skipped, not fatal.
func (f *Finder) FindMatches(ctx context.Context, user *core.Profile, opts FindOptions) ([]core.Match, error) {
	if user == nil {
		return nil, ErrUserRequired
	}
	opts = opts.normalize()

	weights, err := f.learner.WeightsFor(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	candidates, err := f.profiles.ListActiveProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	matches := make([]core.Match, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Id == user.Id {
			continue
		}
		// Legacy records can carry inconsistent ids; the email check
		// catches self-matches those would let through.
		if strings.EqualFold(candidate.Email, user.Email) {
			continue
		}

		sim, err := f.scorer.Score(user, candidate, weights)
		if err != nil {
			f.logger.Warn("scoring candidate failed, skipping",
				"user", user.Id, "candidate", candidate.Id, "err", err)
			continue
		}
		if sim.Score < opts.MinSimilarity {
			continue
		}

		matches = append(matches, core.Match{Profile: candidate, Similarity: sim})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity.Score > matches[j].Similarity.Score
	})
	if len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}

	f.logger.Debug("match scan finished",
		"user", user.Id, "candidates", len(candidates), "matches", len(matches))

	return matches, nil
}
