package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "test content",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "long content",
			content:  "This is a much longer piece of content that should still hash consistently",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestIDFromEmail(t *testing.T) {
	tests := []struct {
		name   string
		email1 string
		email2 string
		want   bool
	}{
		{
			name:   "identical emails",
			email1: "ada@example.edu",
			email2: "ada@example.edu",
			want:   true,
		},
		{
			name:   "case differs",
			email1: "Ada@Example.EDU",
			email2: "ada@example.edu",
			want:   true,
		},
		{
			name:   "surrounding whitespace",
			email1: "  ada@example.edu ",
			email2: "ada@example.edu",
			want:   true,
		},
		{
			name:   "different emails",
			email1: "ada@example.edu",
			email2: "grace@example.edu",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IDFromEmail(tt.email1) == IDFromEmail(tt.email2)
			if got != tt.want {
				t.Errorf("IDFromEmail(%q) == IDFromEmail(%q) = %v, want %v", tt.email1, tt.email2, got, tt.want)
			}
		})
	}
}

func TestHashText(t *testing.T) {
	if HashText("alpha") != HashText("alpha") {
		t.Error("HashText() produced different hashes for same text")
	}
	if HashText("alpha") == HashText("beta") {
		t.Error("HashText() produced same hash for different text")
	}
}

func TestParseSkillLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  SkillLevel
	}{
		{
			name:  "beginner",
			input: "Beginner",
			want:  SkillBeginner,
		},
		{
			name:  "intermediate",
			input: "Intermediate",
			want:  SkillIntermediate,
		},
		{
			name:  "advanced lowercase",
			input: "advanced",
			want:  SkillAdvanced,
		},
		{
			name:  "empty defaults to intermediate",
			input: "",
			want:  SkillIntermediate,
		},
		{
			name:  "unknown defaults to intermediate",
			input: "wizard",
			want:  SkillIntermediate,
		},
		{
			name:  "padded",
			input: "  Advanced ",
			want:  SkillAdvanced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSkillLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseSkillLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLanguageLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  LanguageLevel
	}{
		{
			name:  "native",
			input: "Native",
			want:  LanguageNative,
		},
		{
			name:  "fluent lowercase",
			input: "fluent",
			want:  LanguageFluent,
		},
		{
			name:  "beginner",
			input: "Beginner",
			want:  LanguageBeginner,
		},
		{
			name:  "intermediate",
			input: "Intermediate",
			want:  LanguageIntermediate,
		},
		{
			name:  "empty defaults to fluent",
			input: "",
			want:  LanguageFluent,
		},
		{
			name:  "unknown defaults to intermediate",
			input: "conversational",
			want:  LanguageIntermediate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLanguageLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLanguageLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFeedbackKind(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FeedbackKind
	}{
		{
			name:  "like",
			input: "like",
			want:  FeedbackLike,
		},
		{
			name:  "dislike mixed case",
			input: "Dislike",
			want:  FeedbackDislike,
		},
		{
			name:  "unknown is zero",
			input: "meh",
			want:  FeedbackKind(0),
		},
		{
			name:  "empty is zero",
			input: "",
			want:  FeedbackKind(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFeedbackKind(tt.input)
			if got != tt.want {
				t.Errorf("ParseFeedbackKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFeedbackKind_Sign(t *testing.T) {
	if got := FeedbackLike.Sign(); got != 1.0 {
		t.Errorf("FeedbackLike.Sign() = %v, want 1.0", got)
	}
	if got := FeedbackDislike.Sign(); got != -1.0 {
		t.Errorf("FeedbackDislike.Sign() = %v, want -1.0", got)
	}
}

func TestProfile_Active(t *testing.T) {
	tests := []struct {
		name   string
		status ProfileStatus
		want   bool
	}{
		{
			name:   "active",
			status: StatusActive,
			want:   true,
		},
		{
			name:   "deleted",
			status: StatusDeleted,
			want:   false,
		},
		{
			name:   "zero status",
			status: ProfileStatus(0),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Profile{Status: tt.status}
			if got := p.Active(); got != tt.want {
				t.Errorf("Profile.Active() = %v, want %v", got, tt.want)
			}
		})
	}
}
