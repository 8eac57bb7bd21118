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

import (
	"fmt"
	"strings"
)

// ValidateProfile validates a Profile according to domain rules.
//
// Validation rules:
//   - FullName, Email, Year, Program and Major must not be empty
//   - Email must contain an @
//
// NOT validated (optional or populated later):
//   - Id (derived from the email when zero)
//   - Status (defaults to active on ingestion)
//   - Courses, skills, languages, interests, experience (may all be empty)
func ValidateProfile(p *Profile) error {
	if p == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyFullName)
	}

	email := strings.TrimSpace(p.Email)
	if email == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyEmail)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrMalformedEmail)
	}

	if strings.TrimSpace(p.Year) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyYear)
	}
	if strings.TrimSpace(p.Program) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyProgram)
	}
	if strings.TrimSpace(p.Major) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyMajor)
	}

	return nil
}

// ValidateFeedback validates a SwipeFeedback record.
//
// Validation rules:
//   - UserId and MatchedUserId must be set and distinct
//   - Feedback must be like or dislike
func ValidateFeedback(fb *SwipeFeedback) error {
	if fb == nil {
		return fmt.Errorf("%w: feedback is nil", ErrInvalidFeedback)
	}

	if fb.UserId == 0 || fb.MatchedUserId == 0 {
		return fmt.Errorf("%w: user ids must be set", ErrInvalidFeedback)
	}
	if fb.UserId == fb.MatchedUserId {
		return fmt.Errorf("%w: user cannot swipe on themselves", ErrInvalidFeedback)
	}

	if err := ValidateFeedbackKind(fb.Feedback); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFeedback, err)
	}

	return nil
}

// ValidateFeedbackKind validates that a FeedbackKind has a valid value.
func ValidateFeedbackKind(kind FeedbackKind) error {
	if kind != FeedbackLike && kind != FeedbackDislike {
		return fmt.Errorf("%w: value %d", ErrInvalidFeedbackKind, kind)
	}
	return nil
}
