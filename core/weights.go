package core

import (
	"fmt"
	"math"
	"time"
)

// Feature names used by the similarity scorer and the preference learner.
// The weight map for a user carries exactly these keys.
const (
	FeatureAcademicCourses        = "academic_courses"
	FeatureTechnicalSkills        = "technical_skills"
	FeatureLanguages              = "languages"
	FeatureAcademicLevel          = "academic_level"
	FeatureProfessionalExperience = "professional_experience"
	FeatureMajorProgram           = "major_program"
	FeatureAcademicInterests      = "academic_interests"
	FeaturePersonalInterests      = "personal_interests"
)

// FeatureNames lists every similarity feature in scoring order.
func FeatureNames() []string {
	return []string{
		FeatureAcademicCourses,
		FeatureTechnicalSkills,
		FeatureLanguages,
		FeatureAcademicLevel,
		FeatureProfessionalExperience,
		FeatureMajorProgram,
		FeatureAcademicInterests,
		FeaturePersonalInterests,
	}
}

// weightSumTolerance is the allowed drift from 1.0 when validating sums.
const weightSumTolerance = 0.001

// FeatureWeights is the per-user linear weighting of similarity features.
// Weights are non-negative and sum to 1; Normalize restores the sum
// invariant after updates.
type FeatureWeights struct {
	UserId        ID
	Weights       map[string]float64
	FeedbackCount int64
	UpdatedAt     time.Time
}

// DefaultWeights returns the fixed starting weights used before a user has
// given any feedback. The values sum to 1.
func DefaultWeights() FeatureWeights {
	return FeatureWeights{
		Weights: map[string]float64{
			FeatureAcademicCourses:        0.30,
			FeatureTechnicalSkills:        0.25,
			FeatureLanguages:              0.10,
			FeatureAcademicLevel:          0.10,
			FeatureProfessionalExperience: 0.10,
			FeatureMajorProgram:           0.05,
			FeatureAcademicInterests:      0.05,
			FeaturePersonalInterests:      0.05,
		},
	}
}

// DefaultWeightsFor returns DefaultWeights bound to a user.
func DefaultWeightsFor(userID ID) FeatureWeights {
	w := DefaultWeights()
	w.UserId = userID
	return w
}

// Clone returns a deep copy. Mutating the copy never affects the original.
func (w FeatureWeights) Clone() FeatureWeights {
	out := w
	out.Weights = make(map[string]float64, len(w.Weights))
	for k, v := range w.Weights {
		out.Weights[k] = v
	}
	return out
}

// Sum returns the total of all feature weights.
func (w FeatureWeights) Sum() float64 {
	var sum float64
	for _, v := range w.Weights {
		sum += v
	}
	return sum
}

// Normalize rescales the weights in place so they sum to 1.
// A zero sum restores the defaults; partial information is unrecoverable
// at that point.
func (w *FeatureWeights) Normalize() {
	sum := w.Sum()
	if sum <= 0 {
		w.Weights = DefaultWeights().Weights
		return
	}
	for k, v := range w.Weights {
		w.Weights[k] = v / sum
	}
}

// Validate checks the weight invariants: known feature names only, each
// weight in [0, 1], and a sum of 1 within tolerance.
func (w FeatureWeights) Validate() error {
	known := make(map[string]bool, 8)
	for _, name := range FeatureNames() {
		known[name] = true
	}

	for k, v := range w.Weights {
		if !known[k] {
			return fmt.Errorf("%w: %q", ErrUnknownFeature, k)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s=%v", ErrWeightOutOfRange, k, v)
		}
	}

	if math.Abs(w.Sum()-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: sum=%v", ErrWeightSum, w.Sum())
	}

	return nil
}

// FeatureFeedback is one feature's signed contribution from a swipe event:
// the feedback sign (+1 like, -1 dislike) multiplied by the feature's
// similarity sub-score at swipe time.
type FeatureFeedback struct {
	Feature      string
	Contribution float64
}
