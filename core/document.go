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
	"strings"
	"time"
)

// SearchDocument is the denormalized textual projection of a Profile used
// by the lexical index and, as embedding input, by the embedding store.
// One document per active profile, regenerated whenever searchable fields
// change and removed when the profile leaves the index.
type SearchDocument struct {
	ProfileId ID
	Email     string
	FullName  string
	Content   string
	UpdatedAt time.Time
}

// BuildSearchDocument projects a profile into its searchable text.
//
// The content concatenates labeled sections in a fixed order, skipping
// empty ones: name, major, program, courses, certifications, the free
// academic background text, technical skills, soft skills, academic
// interests, personal interests. List sections are comma-joined; sections
// are space-joined. The order is load-bearing for snippet quality and is
// pinned by tests.
func BuildSearchDocument(p *Profile) SearchDocument {
	var parts []string

	add := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			parts = append(parts, label+": "+value)
		}
	}
	addList := func(label string, values []string) {
		joined := joinNonEmpty(values)
		if joined != "" {
			parts = append(parts, label+": "+joined)
		}
	}

	add("Name", p.FullName)
	add("Major", p.Major)
	add("Program", p.Program)
	addList("Courses", p.Courses)
	addList("Certifications", p.Certifications)
	if strings.TrimSpace(p.PastAcademicText) != "" {
		parts = append(parts, p.PastAcademicText)
	}
	addList("Technical Skills", skillNames(p.TechnicalSkills))
	addList("Soft Skills", p.SoftSkills)
	addList("Academic Interests", p.AcademicInterests)
	addList("Personal Interests", p.PersonalInterests)

	return SearchDocument{
		ProfileId: p.Id,
		Email:     p.Email,
		FullName:  p.FullName,
		Content:   strings.Join(parts, " "),
		UpdatedAt: p.UpdatedAt,
	}
}

func joinNonEmpty(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, ", ")
}

func skillNames(skills []TechnicalSkill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

// LanguageNames returns the names of the given languages in order.
func LanguageNames(langs []SpokenLanguage) []string {
	names := make([]string, 0, len(langs))
	for _, l := range langs {
		names = append(names, l.Name)
	}
	return names
}

// SkillNames returns the names of the given skills in order.
func SkillNames(skills []TechnicalSkill) []string {
	return skillNames(skills)
}
