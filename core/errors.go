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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidProfile indicates a Profile failed validation.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInvalidWeights indicates a FeatureWeights value failed validation.
	ErrInvalidWeights = errors.New("invalid feature weights")

	// ErrInvalidFeedback indicates a SwipeFeedback record failed validation.
	ErrInvalidFeedback = errors.New("invalid swipe feedback")

	// ErrEmptyFullName indicates the FullName field is empty.
	ErrEmptyFullName = errors.New("full name cannot be empty")

	// ErrEmptyEmail indicates the Email field is empty.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrMalformedEmail indicates the Email field is not a plausible address.
	ErrMalformedEmail = errors.New("email must contain @")

	// ErrEmptyYear indicates the academic Year field is empty.
	ErrEmptyYear = errors.New("year cannot be empty")

	// ErrEmptyProgram indicates the Program field is empty.
	ErrEmptyProgram = errors.New("program cannot be empty")

	// ErrEmptyMajor indicates the Major field is empty.
	ErrEmptyMajor = errors.New("major cannot be empty")

	// ErrInvalidFeedbackKind indicates an invalid FeedbackKind value.
	ErrInvalidFeedbackKind = errors.New("invalid feedback kind")

	// ErrUnknownFeature indicates a weight key that is not a known feature name.
	ErrUnknownFeature = errors.New("unknown feature name")

	// ErrWeightOutOfRange indicates a feature weight outside [0, 1].
	ErrWeightOutOfRange = errors.New("feature weight out of range")

	// ErrWeightSum indicates feature weights that do not sum to 1.
	ErrWeightSum = errors.New("feature weights must sum to 1")
)
