// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package scoring computes explainable pairwise similarity between
// student profiles.
//
// The score is a weighted sum of eight feature sub-scores, each in
// [0, 1]: shared courses, technical skills (name overlap blended with
// proficiency closeness), spoken languages, academic level, professional
// experience, major/program, and academic and personal interests. The
// weights come from core.FeatureWeights, so a caller can score with the
// global defaults or with a user's learned preferences.
//
// Alongside the score, every comparison yields the unweighted per-feature
// breakdown (the input to preference learning), human-readable
// commonality strings for display, and a coarse match level.
//
// Usage:
//
//	scorer, err := scoring.NewScorer()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sim, err := scorer.Score(profileA, profileB, core.DefaultWeights())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(sim.Score, sim.Level, sim.Commonalities)
//
// Scorers hold no state and are safe for concurrent use.
package scoring
