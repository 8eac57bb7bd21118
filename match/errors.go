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


package match

import "errors"

var (
	// ErrProfileRepositoryRequired is returned when a nil profile repository is provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")

	// ErrWeightsRepositoryRequired is returned when a nil weights repository is provided.
	ErrWeightsRepositoryRequired = errors.New("weights repository required")

	// ErrFeedbackRepositoryRequired is returned when a nil feedback repository is provided.
	ErrFeedbackRepositoryRequired = errors.New("feedback repository required")

	// ErrLearnerRequired is returned when a nil learner is provided.
	ErrLearnerRequired = errors.New("learner required")

	// ErrScorerRequired is returned when a nil scorer is provided.
	ErrScorerRequired = errors.New("scorer required")

	// ErrUserRequired is returned when a nil user profile is passed to an
	// operation that needs one.
	ErrUserRequired = errors.New("user profile required")
)
