package core

import (
	"errors"
	"testing"
)

func validProfile() *Profile {
	return &Profile{
		Id:       IDFromEmail("ada@example.edu"),
		Email:    "ada@example.edu",
		FullName: "Ada Lovelace",
		Major:    "Computer Science",
		Program:  "BSc Computer Science",
		Year:     "Junior",
		Status:   StatusActive,
	}
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Profile)
		profile *Profile
		wantErr error
	}{
		{
			name:    "valid profile",
			profile: validProfile(),
			wantErr: nil,
		},
		{
			name:    "nil profile",
			profile: nil,
			wantErr: ErrInvalidProfile,
		},
		{
			name:    "empty full name",
			profile: validProfile(),
			mutate:  func(p *Profile) { p.FullName = "" },
			wantErr: ErrEmptyFullName,
		},
		{
			name:    "whitespace full name",
			profile: validProfile(),
			mutate:  func(p *Profile) { p.FullName = "   " },
			wantErr: ErrEmptyFullName,
		},
		{
			name:    "empty email",
			profile: validProfile(),
			mutate:  func(p *Profile) { p.Email = "" },
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "email without at sign",
			profile: validProfile(),
			mutate:  func(p *Profile) { p.Email = "ada.example.edu" },
			wantErr: ErrMalformedEmail,
		},
		{
			name:    "empty year",
			profile: validProfile(),
			mutate:  func(p *Profile) { p.Year = "" },
			wantErr: ErrEmptyYear,
		},
		{
			name:    "empty program",
			profile: validProfile(),
			mutate:  func(p *Profile) { p.Program = "" },
			wantErr: ErrEmptyProgram,
		},
		{
			name:    "empty major",
			profile: validProfile(),
			mutate:  func(p *Profile) { p.Major = "" },
			wantErr: ErrEmptyMajor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mutate != nil {
				tt.mutate(tt.profile)
			}
			err := ValidateProfile(tt.profile)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateProfile() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateProfile() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateProfile() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidProfile) && tt.wantErr != ErrInvalidProfile {
				t.Errorf("ValidateProfile() error = %v, want wrapped %v", err, ErrInvalidProfile)
			}
		})
	}
}

func TestValidateFeedback(t *testing.T) {
	tests := []struct {
		name     string
		feedback *SwipeFeedback
		wantErr  error
	}{
		{
			name: "valid like",
			feedback: &SwipeFeedback{
				UserId:           IDFromEmail("ada@example.edu"),
				UserEmail:        "ada@example.edu",
				MatchedUserId:    IDFromEmail("grace@example.edu"),
				MatchedUserEmail: "grace@example.edu",
				Feedback:         FeedbackLike,
			},
			wantErr: nil,
		},
		{
			name: "valid dislike",
			feedback: &SwipeFeedback{
				UserId:           IDFromEmail("ada@example.edu"),
				UserEmail:        "ada@example.edu",
				MatchedUserId:    IDFromEmail("grace@example.edu"),
				MatchedUserEmail: "grace@example.edu",
				Feedback:         FeedbackDislike,
			},
			wantErr: nil,
		},
		{
			name:     "nil feedback",
			feedback: nil,
			wantErr:  ErrInvalidFeedback,
		},
		{
			name: "missing user",
			feedback: &SwipeFeedback{
				MatchedUserId: IDFromEmail("grace@example.edu"),
				Feedback:      FeedbackLike,
			},
			wantErr: ErrInvalidFeedback,
		},
		{
			name: "missing matched user",
			feedback: &SwipeFeedback{
				UserId:   IDFromEmail("ada@example.edu"),
				Feedback: FeedbackLike,
			},
			wantErr: ErrInvalidFeedback,
		},
		{
			name: "self swipe",
			feedback: &SwipeFeedback{
				UserId:        IDFromEmail("ada@example.edu"),
				MatchedUserId: IDFromEmail("ada@example.edu"),
				Feedback:      FeedbackLike,
			},
			wantErr: ErrInvalidFeedback,
		},
		{
			name: "invalid kind",
			feedback: &SwipeFeedback{
				UserId:        IDFromEmail("ada@example.edu"),
				MatchedUserId: IDFromEmail("grace@example.edu"),
				Feedback:      FeedbackKind(99),
			},
			wantErr: ErrInvalidFeedbackKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFeedback(tt.feedback)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateFeedback() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateFeedback() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFeedback() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFeedbackKind(t *testing.T) {
	tests := []struct {
		name    string
		kind    FeedbackKind
		wantErr bool
	}{
		{
			name:    "like",
			kind:    FeedbackLike,
			wantErr: false,
		},
		{
			name:    "dislike",
			kind:    FeedbackDislike,
			wantErr: false,
		},
		{
			name:    "zero kind",
			kind:    FeedbackKind(0),
			wantErr: true,
		},
		{
			name:    "out of range",
			kind:    FeedbackKind(999),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFeedbackKind(tt.kind)

			if tt.wantErr && err == nil {
				t.Error("ValidateFeedbackKind() error = nil, want error")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("ValidateFeedbackKind() error = %v, want nil", err)
			}

			if err != nil && !errors.Is(err, ErrInvalidFeedbackKind) {
				t.Errorf("ValidateFeedbackKind() error = %v, want %v", err, ErrInvalidFeedbackKind)
			}
		})
	}
}
