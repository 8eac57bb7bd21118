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


// Package match turns pairwise similarity into product behavior: ranked
// match lists, per-user preference learning, and connection listings.
//
// The Finder scans every active profile and ranks the candidates against
// a user with the scoring package, using whatever weights the Learner has
// accumulated for that user. The Learner folds swipe feedback into those
// weights: a like reinforces the features that drove the match, a dislike
// dampens them, and the weights are renormalized after every update so
// they remain a distribution. Connections reports the swipe graph around
// a user (who they liked, who liked them, mutual matches) with freshly
// recomputed similarity for each connection.
//
// Usage:
//
//	learner, err := match.NewLearner(weightsRepo, feedbackRepo)
//	if err != nil {
//		log.Fatal(err)
//	}
//	finder, err := match.NewFinder(profileRepo, learner, scorer)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	matches, err := finder.FindMatches(ctx, user, match.FindOptions{})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Weight updates are serialized per user, so concurrent swipes from the
// same user never lose feedback; different users update concurrently.
package match
