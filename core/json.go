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


// Profile JSON arrives from several exporters that disagree on shape:
// skills and languages appear either as bare strings or as objects with
// aliased key names, and plain lists sometimes wrap their items in
// objects. The unmarshalers below accept every shape seen in the wild;
// marshaling always emits the canonical object form.

package core

import (
	"bytes"
	"encoding/json"
	"strings"
)

func isJSONString(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '"'
}

// UnmarshalJSON accepts the status as a string ("active", "inactive",
// "suspended", "deleted") or as the numeric enum value. Every non-active
// string maps to StatusDeleted.
func (ps *ProfileStatus) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "active":
			*ps = StatusActive
		default:
			*ps = StatusDeleted
		}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*ps = ProfileStatus(n)
	return nil
}

func (ps ProfileStatus) MarshalJSON() ([]byte, error) {
	switch ps {
	case StatusDeleted:
		return json.Marshal("deleted")
	default:
		return json.Marshal("active")
	}
}

// UnmarshalJSON accepts a bare skill name or an object keyed by
// skillName/name and skillProficiency/proficiency. A missing proficiency
// parses as SkillIntermediate.
func (s *TechnicalSkill) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		s.Name = strings.TrimSpace(name)
		s.Proficiency = SkillIntermediate
		return nil
	}

	var obj struct {
		SkillName        string `json:"skillName"`
		Name             string `json:"name"`
		SkillProficiency string `json:"skillProficiency"`
		Proficiency      string `json:"proficiency"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	name := obj.SkillName
	if name == "" {
		name = obj.Name
	}
	prof := obj.SkillProficiency
	if prof == "" {
		prof = obj.Proficiency
	}
	s.Name = strings.TrimSpace(name)
	s.Proficiency = ParseSkillLevel(prof)
	return nil
}

func (s TechnicalSkill) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SkillName        string `json:"skillName"`
		SkillProficiency string `json:"skillProficiency"`
	}{s.Name, s.Proficiency.String()})
}

// UnmarshalJSON accepts a bare language name or an object keyed by
// language/name and languageProficiency/proficiency. A missing
// proficiency parses as LanguageFluent.
func (l *SpokenLanguage) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		l.Name = strings.TrimSpace(name)
		l.Proficiency = LanguageFluent
		return nil
	}

	var obj struct {
		Language            string `json:"language"`
		Name                string `json:"name"`
		LanguageProficiency string `json:"languageProficiency"`
		Proficiency         string `json:"proficiency"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	name := obj.Language
	if name == "" {
		name = obj.Name
	}
	prof := obj.LanguageProficiency
	if prof == "" {
		prof = obj.Proficiency
	}
	l.Name = strings.TrimSpace(name)
	l.Proficiency = ParseLanguageLevel(prof)
	return nil
}

func (l SpokenLanguage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Language            string `json:"language"`
		LanguageProficiency string `json:"languageProficiency"`
	}{l.Name, l.Proficiency.String()})
}

// UnmarshalJSON accepts a bare title or an object keyed by title/jobTitle,
// company, and description/jobDescription.
func (e *Experience) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		var title string
		if err := json.Unmarshal(data, &title); err != nil {
			return err
		}
		e.Title = strings.TrimSpace(title)
		return nil
	}

	var obj struct {
		Title          string `json:"title"`
		JobTitle       string `json:"jobTitle"`
		Company        string `json:"company"`
		Description    string `json:"description"`
		JobDescription string `json:"jobDescription"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	title := obj.Title
	if title == "" {
		title = obj.JobTitle
	}
	desc := obj.Description
	if desc == "" {
		desc = obj.JobDescription
	}
	e.Title = strings.TrimSpace(title)
	e.Company = strings.TrimSpace(obj.Company)
	e.Description = strings.TrimSpace(desc)
	return nil
}

// UnmarshalJSON accepts an array whose items are strings or objects
// keyed by name/course_name. Items that resolve to empty strings are
// dropped.
func (sl *StringList) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	out := make(StringList, 0, len(items))
	for _, item := range items {
		var value string
		if isJSONString(item) {
			if err := json.Unmarshal(item, &value); err != nil {
				return err
			}
		} else {
			var obj struct {
				Name       string `json:"name"`
				CourseName string `json:"course_name"`
			}
			if err := json.Unmarshal(item, &obj); err != nil {
				return err
			}
			value = obj.Name
			if value == "" {
				value = obj.CourseName
			}
		}
		value = strings.TrimSpace(value)
		if value != "" {
			out = append(out, value)
		}
	}
	*sl = out
	return nil
}
