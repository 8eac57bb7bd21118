package scoring

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/peermatch/core"
)

// Scorer computes explainable pairwise similarity between profiles.
// It is stateless and safe for concurrent use.
type Scorer struct {
	logger *slog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scorer) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewScorer creates a new scorer.
func NewScorer(opts ...Option) (*Scorer, error) {
	s := &Scorer{
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Score compares two profiles under the given feature weights. The result
// carries the weighted score, the unweighted per-feature breakdown, the
// commonality strings and the match level.
func (s *Scorer) Score(a, b *core.Profile, w core.FeatureWeights) (core.Similarity, error) {
	if a == nil || b == nil {
		return core.Similarity{}, ErrProfileRequired
	}
	if err := w.Validate(); err != nil {
		return core.Similarity{}, fmt.Errorf("invalid weights: %w", err)
	}

	features := map[string]float64{
		core.FeatureAcademicCourses:        jaccard(a.Courses, b.Courses),
		core.FeatureTechnicalSkills:        skillSimilarity(a.TechnicalSkills, b.TechnicalSkills),
		core.FeatureLanguages:              jaccard(core.LanguageNames(a.Languages), core.LanguageNames(b.Languages)),
		core.FeatureAcademicLevel:          levelSimilarity(a.Year, b.Year),
		core.FeatureProfessionalExperience: experienceSimilarity(a.Experience, b.Experience),
		core.FeatureMajorProgram:           majorProgramSimilarity(a, b),
		core.FeatureAcademicInterests:      jaccard(a.AcademicInterests, b.AcademicInterests),
		core.FeaturePersonalInterests:      jaccard(a.PersonalInterests, b.PersonalInterests),
	}

	var score float64
	for name, sub := range features {
		score += sub * w.Weights[name]
	}
	score = clamp01(score)

	level := MatchLevel(score)
	s.logger.Debug("scored profile pair",
		"a", a.Id, "b", b.Id, "score", score, "level", level)

	return core.Similarity{
		Score:         score,
		Features:      features,
		Commonalities: commonalities(a, b),
		Level:         level,
	}, nil
}

// MatchLevel converts a similarity score to its descriptive label.
func MatchLevel(score float64) string {
	switch {
	case score >= 0.80:
		return "Excellent Match"
	case score >= 0.65:
		return "Great Match"
	case score >= 0.50:
		return "Good Match"
	case score >= 0.35:
		return "Moderate Match"
	default:
		return "Low Match"
	}
}

// commonalities builds the human-readable overlap summary. Entries follow
// a fixed order; only non-empty ones are emitted.
func commonalities(a, b *core.Profile) []string {
	var out []string

	if courses := commonStrings(a.Courses, b.Courses); len(courses) > 0 {
		out = append(out, fmt.Sprintf("Both taking: %s", strings.Join(firstN(courses, 3), ", ")))
	}
	skills := commonStrings(core.SkillNames(a.TechnicalSkills), core.SkillNames(b.TechnicalSkills))
	if len(skills) > 0 {
		out = append(out, fmt.Sprintf("Shared skills: %s", strings.Join(firstN(skills, 3), ", ")))
	}
	if interests := commonStrings(a.AcademicInterests, b.AcademicInterests); len(interests) > 0 {
		out = append(out, fmt.Sprintf("Common interests: %s", strings.Join(firstN(interests, 2), ", ")))
	}
	langs := commonStrings(core.LanguageNames(a.Languages), core.LanguageNames(b.Languages))
	if len(langs) > 0 {
		out = append(out, fmt.Sprintf("Both speak: %s", strings.Join(langs, ", ")))
	}
	if a.Year != "" && strings.EqualFold(a.Year, b.Year) {
		out = append(out, fmt.Sprintf("Both are %s students", a.Year))
	}
	if equalFoldNonEmpty(a.Major, b.Major) {
		out = append(out, fmt.Sprintf("Both studying %s", titleCase(a.Major)))
	}
	if len(a.Experience) > 0 && len(b.Experience) > 0 {
		terms := commonStrings(experienceTerms(a.Experience), experienceTerms(b.Experience))
		if len(terms) > 0 {
			out = append(out, fmt.Sprintf("Similar experience: %s", strings.Join(firstN(terms, 2), ", ")))
		}
	}

	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
