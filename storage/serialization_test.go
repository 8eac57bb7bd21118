package storage

import (
	"testing"
	"time"

	"github.com/poiesic/peermatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"email-based ID", core.IDFromEmail("student@university.edu")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Marshal
			data := MarshalID(tt.id)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			// Unmarshal
			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalProfile(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name    string
		profile *core.Profile
	}{
		{
			name: "minimal profile",
			profile: &core.Profile{
				Id:        core.IDFromEmail("min@university.edu"),
				Email:     "min@university.edu",
				FullName:  "Min Park",
				Major:     "Computer Science",
				Program:   "Bachelors",
				Year:      "Junior",
				Status:    core.StatusActive,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			name: "fully populated profile",
			profile: &core.Profile{
				Id:             core.IDFromEmail("full@university.edu"),
				Email:          "full@university.edu",
				FullName:       "Full Record",
				Major:          "Data Science",
				Program:        "Masters",
				Year:           "Graduate",
				Courses:        core.StringList{"Machine Learning", "Databases"},
				Certifications: core.StringList{"AWS Solutions Architect"},
				TechnicalSkills: []core.TechnicalSkill{
					{Name: "Python", Proficiency: core.SkillAdvanced},
					{Name: "Go", Proficiency: core.SkillIntermediate},
				},
				SoftSkills: core.StringList{"Communication"},
				Languages: []core.SpokenLanguage{
					{Name: "English", Proficiency: core.LanguageNative},
					{Name: "Mandarin", Proficiency: core.LanguageFluent},
				},
				AcademicInterests: core.StringList{"NLP", "Distributed Systems"},
				PersonalInterests: core.StringList{"Climbing"},
				Experience: []core.Experience{
					{Title: "SWE Intern", Company: "Acme", Description: "Built pipelines"},
				},
				PastAcademicText: "Transferred from community college with honors.",
				Status:           core.StatusActive,
				CreatedAt:        now,
				UpdatedAt:        now,
			},
		},
		{
			name: "unicode fields",
			profile: &core.Profile{
				Id:        core.IDFromEmail("uni@university.edu"),
				Email:     "uni@university.edu",
				FullName:  "Zoë Müller 世界",
				Major:     "Lingüística",
				Program:   "Bachelors",
				Year:      "Senior",
				Status:    core.StatusDeleted,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Marshal
			data := MarshalProfile(tt.profile)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			// Unmarshal
			decoded, err := UnmarshalProfile(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			// Verify fields
			assert.Equal(t, tt.profile.Id, decoded.Id)
			assert.Equal(t, tt.profile.Email, decoded.Email)
			assert.Equal(t, tt.profile.FullName, decoded.FullName)
			assert.Equal(t, tt.profile.Major, decoded.Major)
			assert.Equal(t, tt.profile.Program, decoded.Program)
			assert.Equal(t, tt.profile.Year, decoded.Year)
			assert.Equal(t, tt.profile.Status, decoded.Status)
			assert.Equal(t, tt.profile.PastAcademicText, decoded.PastAcademicText)
			assert.True(t, tt.profile.CreatedAt.Equal(decoded.CreatedAt))
			assert.True(t, tt.profile.UpdatedAt.Equal(decoded.UpdatedAt))
			// Handle nil vs empty slice
			if len(tt.profile.TechnicalSkills) == 0 {
				assert.Empty(t, decoded.TechnicalSkills)
			} else {
				assert.Equal(t, tt.profile.TechnicalSkills, decoded.TechnicalSkills)
			}
			if len(tt.profile.Languages) == 0 {
				assert.Empty(t, decoded.Languages)
			} else {
				assert.Equal(t, tt.profile.Languages, decoded.Languages)
			}
			if len(tt.profile.Courses) == 0 {
				assert.Empty(t, decoded.Courses)
			} else {
				assert.Equal(t, tt.profile.Courses, decoded.Courses)
			}
			if len(tt.profile.Experience) == 0 {
				assert.Empty(t, decoded.Experience)
			} else {
				assert.Equal(t, tt.profile.Experience, decoded.Experience)
			}
		})
	}
}

func TestUnmarshalProfile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"invalid data", []byte{0xFF, 0xFF, 0xFF}},
		{"partial data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalProfile(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestMarshalUnmarshalEmbeddingRecord(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	record := &core.EmbeddingRecord{
		ProfileId:   core.ID(7),
		Email:       "vec@university.edu",
		FullName:    "Vec Holder",
		Vector:      make([]float32, 768), // typical nomic-embed-text size
		ContentHash: core.HashText("profile text"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	record.Vector[0] = 0.25
	record.Vector[767] = -0.5

	data := MarshalEmbeddingRecord(record)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalEmbeddingRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record.ProfileId, decoded.ProfileId)
	assert.Equal(t, record.Email, decoded.Email)
	assert.Equal(t, record.ContentHash, decoded.ContentHash)
	assert.Equal(t, record.Vector, decoded.Vector)
	assert.True(t, record.UpdatedAt.Equal(decoded.UpdatedAt))
}

func TestMarshalUnmarshalFeedback(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	event := &core.SwipeFeedback{
		Id:               123,
		UserId:           core.ID(1),
		UserEmail:        "a@university.edu",
		MatchedUserId:    core.ID(2),
		MatchedUserEmail: "b@university.edu",
		Feedback:         core.FeedbackDislike,
		Features:         map[string]float64{"skills": 0.8, "major": 1.0},
		SessionId:        "session_20250601_101500_1",
		CreatedAt:        now,
	}

	data := MarshalFeedback(event)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalFeedback(data)
	require.NoError(t, err)
	assert.Equal(t, event.Id, decoded.Id)
	assert.Equal(t, event.UserId, decoded.UserId)
	assert.Equal(t, event.MatchedUserId, decoded.MatchedUserId)
	assert.Equal(t, event.Feedback, decoded.Feedback)
	assert.Equal(t, event.Features, decoded.Features)
	assert.Equal(t, event.SessionId, decoded.SessionId)
	assert.True(t, event.CreatedAt.Equal(decoded.CreatedAt))
}

func TestMarshalUnmarshalWeights(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	weights := core.DefaultWeightsFor(core.ID(9))
	weights.FeedbackCount = 14
	weights.UpdatedAt = now

	data := MarshalWeights(&weights)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalWeights(data)
	require.NoError(t, err)
	assert.Equal(t, weights.UserId, decoded.UserId)
	assert.Equal(t, weights.Weights, decoded.Weights)
	assert.Equal(t, weights.FeedbackCount, decoded.FeedbackCount)
	assert.True(t, weights.UpdatedAt.Equal(decoded.UpdatedAt))
}

func TestMarshalUnmarshalCheckpoint(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	checkpoint := &core.Checkpoint{
		ProcessorType: "embed-backfill",
		LastProfileId: core.ID(77),
		Processed:     1500,
		UpdatedAt:     now,
	}

	data := MarshalCheckpoint(checkpoint)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalCheckpoint(data)
	require.NoError(t, err)
	assert.Equal(t, checkpoint.ProcessorType, decoded.ProcessorType)
	assert.Equal(t, checkpoint.LastProfileId, decoded.LastProfileId)
	assert.Equal(t, checkpoint.Processed, decoded.Processed)
	assert.True(t, checkpoint.UpdatedAt.Equal(decoded.UpdatedAt))
}

func TestRoundTripConsistency(t *testing.T) {
	t.Run("multiple marshal-unmarshal cycles", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Microsecond)
		original := &core.Profile{
			Id:       core.IDFromEmail("cycle@university.edu"),
			Email:    "cycle@university.edu",
			FullName: "Cycle Test",
			Major:    "CS",
			Program:  "Bachelors",
			Year:     "Senior",
			TechnicalSkills: []core.TechnicalSkill{
				{Name: "Rust", Proficiency: core.SkillBeginner},
			},
			Status:    core.StatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}

		// Perform 3 marshal-unmarshal cycles
		current := original
		for i := 0; i < 3; i++ {
			data := MarshalProfile(current)
			decoded, err := UnmarshalProfile(data)
			require.NoError(t, err)
			current = decoded
		}

		// Verify final result matches original
		assert.Equal(t, original.Id, current.Id)
		assert.Equal(t, original.Email, current.Email)
		assert.Equal(t, original.FullName, current.FullName)
		assert.Equal(t, original.TechnicalSkills, current.TechnicalSkills)
		assert.Equal(t, original.Status, current.Status)
	})
}
