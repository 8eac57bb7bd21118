package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Profile IDs are derived from the owner's email so that lookups by id and
// by email always agree; feedback IDs come from database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// IDFromEmail derives the stable profile ID for an email address.
// The address is trimmed and lower-cased first, so case variants of the
// same address map to the same profile.
func IDFromEmail(email string) ID {
	return IDFromContent(strings.ToLower(strings.TrimSpace(email)))
}

// HashText returns a 64-bit digest of text content.
// The embedding store uses it to decide whether stored vectors are stale.
func HashText(text string) uint64 {
	return uint64(IDFromContent(text))
}

// ProfileStatus tracks the lifecycle of a profile.
type ProfileStatus int

const (
	// StatusActive marks a profile visible to search and matching.
	StatusActive ProfileStatus = iota + 1
	// StatusDeleted marks a soft-deleted profile. The record is kept but
	// excluded from listings, the search index, and the embedding store.
	StatusDeleted
)

// SkillLevel is a self-reported proficiency for a technical skill.
// The numeric values feed directly into proficiency-closeness scoring.
type SkillLevel int

const (
	SkillBeginner     SkillLevel = 1
	SkillIntermediate SkillLevel = 2
	SkillAdvanced     SkillLevel = 3
)

// ParseSkillLevel maps a proficiency string to a SkillLevel.
// Unknown or empty values default to SkillIntermediate, matching how
// legacy records without a proficiency are treated.
func ParseSkillLevel(s string) SkillLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return SkillBeginner
	case "advanced":
		return SkillAdvanced
	default:
		return SkillIntermediate
	}
}

func (l SkillLevel) String() string {
	switch l {
	case SkillBeginner:
		return "Beginner"
	case SkillAdvanced:
		return "Advanced"
	default:
		return "Intermediate"
	}
}

// LanguageLevel is a self-reported spoken-language proficiency.
type LanguageLevel int

const (
	LanguageBeginner     LanguageLevel = 1
	LanguageIntermediate LanguageLevel = 2
	LanguageFluent       LanguageLevel = 3
	LanguageNative       LanguageLevel = 4
)

// ParseLanguageLevel maps a proficiency string to a LanguageLevel.
// Empty values default to LanguageFluent, matching how records without
// a stated proficiency are treated. Unrecognized values parse as
// LanguageIntermediate.
func ParseLanguageLevel(s string) LanguageLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return LanguageFluent
	case "beginner":
		return LanguageBeginner
	case "fluent":
		return LanguageFluent
	case "native":
		return LanguageNative
	default:
		return LanguageIntermediate
	}
}

func (l LanguageLevel) String() string {
	switch l {
	case LanguageBeginner:
		return "Beginner"
	case LanguageFluent:
		return "Fluent"
	case LanguageNative:
		return "Native"
	default:
		return "Intermediate"
	}
}

// TechnicalSkill is a skill name with proficiency.
// Upstream data stores skills either as bare strings or as objects; both
// decode into this canonical form (see UnmarshalJSON).
type TechnicalSkill struct {
	Name        string
	Proficiency SkillLevel
}

// SpokenLanguage is a language name with proficiency.
// Proficiency is carried end to end but the similarity scorer currently
// compares names only.
type SpokenLanguage struct {
	Name        string
	Proficiency LanguageLevel
}

// Experience is one professional experience entry.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description,omitempty"`
}

// StringList is a []string that also decodes JSON arrays mixing bare
// strings and {"name": ...} objects, normalizing them once at the boundary.
type StringList []string

// Profile is a student record.
type Profile struct {
	Id                ID               `json:"profile_id,omitempty"`
	Email             string           `json:"email"` // globally unique among active profiles
	FullName          string           `json:"full_name"`
	Major             string           `json:"major"`
	Program           string           `json:"program"`
	Year              string           `json:"year"` // academic level, e.g. "Junior" or "Masters"
	Courses           StringList       `json:"courses,omitempty"`
	Certifications    StringList       `json:"certifications,omitempty"`
	TechnicalSkills   []TechnicalSkill `json:"technical_skills,omitempty"`
	SoftSkills        StringList       `json:"soft_skills,omitempty"`
	Languages         []SpokenLanguage `json:"languages,omitempty"`
	AcademicInterests StringList       `json:"academic_interests,omitempty"`
	PersonalInterests StringList       `json:"personal_interests,omitempty"`
	Experience        []Experience     `json:"professional_experience,omitempty"`
	PastAcademicText  string           `json:"past_academic_profile_text,omitempty"`
	Status            ProfileStatus    `json:"status,omitempty"`
	CreatedAt         time.Time        `json:"created_at,omitempty"`
	UpdatedAt         time.Time        `json:"updated_at,omitempty"`
}

// Active reports whether the profile participates in search and matching.
func (p *Profile) Active() bool {
	return p.Status == StatusActive
}

// EmbeddingRecord stores the embedding vector for one profile.
// ContentHash is the digest of the exact text that produced Vector; the
// record is regenerated only when that hash changes.
type EmbeddingRecord struct {
	ProfileId   ID
	Email       string
	FullName    string
	Vector      []float32
	ContentHash uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VectorMatch is an embedding record paired with its cosine similarity
// against a query vector.
type VectorMatch struct {
	Record *EmbeddingRecord
	Score  float32
}

// FeedbackKind distinguishes positive from negative swipe feedback.
type FeedbackKind int

const (
	FeedbackLike FeedbackKind = iota + 1
	FeedbackDislike
)

// ParseFeedbackKind maps the wire strings "like"/"dislike" to a FeedbackKind.
// Anything else returns 0, which fails validation.
func ParseFeedbackKind(s string) FeedbackKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "like":
		return FeedbackLike
	case "dislike":
		return FeedbackDislike
	default:
		return 0
	}
}

func (k FeedbackKind) String() string {
	switch k {
	case FeedbackLike:
		return "like"
	case FeedbackDislike:
		return "dislike"
	default:
		return "unknown"
	}
}

// Sign returns +1 for a like and -1 for a dislike.
func (k FeedbackKind) Sign() float64 {
	if k == FeedbackLike {
		return 1
	}
	return -1
}

// SwipeFeedback is one append-only swipe event. Features snapshots the
// per-feature similarity breakdown that was shown at swipe time, so later
// weight updates reflect what the user actually reacted to.
type SwipeFeedback struct {
	Id               uint64 // assigned from a storage sequence
	UserId           ID
	UserEmail        string
	MatchedUserId    ID
	MatchedUserEmail string
	Feedback         FeedbackKind
	Features         map[string]float64
	SessionId        string
	CreatedAt        time.Time
}

// Checkpoint records resumable progress for a long-running background job,
// keyed by the processor that owns it.
type Checkpoint struct {
	ProcessorType string
	LastProfileId ID
	Processed     int64
	UpdatedAt     time.Time
}
