package embedding

import (
	"fmt"
	"strings"

	"github.com/poiesic/peermatch/core"
)

// maxSnippetRunes caps the structured summary length.
const maxSnippetRunes = 250

// snippetFor builds a display snippet for a matched profile. It prefers the
// structured summary, falls back to "name - major", and degrades to a bare
// profile reference when no profile data is on hand.
func snippetFor(p *core.Profile, id core.ID) string {
	if p != nil {
		if summary := profileSummary(p); summary != "" {
			return summary
		}
		if strings.TrimSpace(p.FullName) != "" || strings.TrimSpace(p.Major) != "" {
			return fmt.Sprintf("%s - %s", p.FullName, p.Major)
		}
	}
	return fmt.Sprintf("Profile %d", id)
}

// profileSummary renders the labeled sections of a profile, skipping empty
// ones. The summary always carries a trailing ellipsis.
func profileSummary(p *core.Profile) string {
	var parts []string

	if strings.TrimSpace(p.Major) != "" {
		parts = append(parts, "Major: "+p.Major)
	}
	if skills := joinFirst(core.SkillNames(p.TechnicalSkills), 5); skills != "" {
		parts = append(parts, "Skills: "+skills)
	}
	if courses := joinFirst(p.Courses, 3); courses != "" {
		parts = append(parts, "Courses: "+courses)
	}
	if interests := joinFirst(p.AcademicInterests, 3); interests != "" {
		parts = append(parts, "Interests: "+interests)
	}

	if len(parts) == 0 {
		return ""
	}
	return truncateRunes(strings.Join(parts, ". "), maxSnippetRunes) + "..."
}

// joinFirst comma-joins up to n leading values, dropping blank ones.
func joinFirst(values []string, n int) string {
	if len(values) > n {
		values = values[:n]
	}
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, ", ")
}

// truncateRunes cuts s to at most max runes.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
