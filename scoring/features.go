package scoring

import (
	"math"
	"strings"

	"github.com/poiesic/peermatch/core"
)

// jaccard computes |A∩B| / |A∪B| over the unique values of the two lists.
// Two empty sets count as full agreement; exactly one empty set as none.
// Values are compared verbatim.
func jaccard(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	intersection := 0
	for v := range setA {
		if setB[v] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

// skillSimilarity blends name overlap with proficiency closeness:
// 0.7 on the name Jaccard plus 0.3 on the mean closeness over common
// skills, where closeness is 1 − |p1−p2|/2 on the 1..3 proficiency scale.
func skillSimilarity(a, b []core.TechnicalSkill) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	levelsA := skillLevels(a)
	levelsB := skillLevels(b)

	intersection := 0
	var closeness float64
	for name, pa := range levelsA {
		pb, ok := levelsB[name]
		if !ok {
			continue
		}
		intersection++
		closeness += 1 - math.Abs(pa-pb)/2
	}
	union := len(levelsA) + len(levelsB) - intersection

	base := float64(intersection) / float64(union)
	var bonus float64
	if intersection > 0 {
		bonus = closeness / float64(intersection)
	}

	return 0.7*base + 0.3*bonus
}

// skillLevels maps skill names to numeric proficiency. Duplicate names
// keep the last entry's level.
func skillLevels(skills []core.TechnicalSkill) map[string]float64 {
	levels := make(map[string]float64, len(skills))
	for _, s := range skills {
		levels[s.Name] = proficiencyValue(s.Proficiency)
	}
	return levels
}

// proficiencyValue returns the 1..3 rank of a skill level. Values outside
// the known range count as intermediate.
func proficiencyValue(l core.SkillLevel) float64 {
	if l < core.SkillBeginner || l > core.SkillAdvanced {
		return float64(core.SkillIntermediate)
	}
	return float64(l)
}

var undergraduateLevels = map[string]bool{
	"freshman": true, "sophomore": true, "junior": true, "senior": true,
}

var graduateLevels = map[string]bool{
	"graduate": true, "masters": true, "phd": true,
}

// levelSimilarity compares academic levels: equal levels score 1.0, levels
// in the same coarse bucket (undergraduate or graduate) score 0.5.
func levelSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}
	if strings.EqualFold(a, b) {
		return 1.0
	}

	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	if (undergraduateLevels[la] && undergraduateLevels[lb]) ||
		(graduateLevels[la] && graduateLevels[lb]) {
		return 0.5
	}

	return 0.0
}

// experienceSimilarity compares professional histories on their keyword
// summaries, with a small bonus for similar entry counts. Two profiles
// without any experience agree fully; one-sided experience gets partial
// credit.
func experienceSimilarity(a, b []core.Experience) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.3
	}

	termsA := experienceTerms(a)
	termsB := experienceTerms(b)
	if len(termsA) == 0 && len(termsB) == 0 {
		return 1.0
	}
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0.2
	}

	base := jaccard(termsA, termsB)
	countBonus := math.Max(0, 0.2-0.05*math.Abs(float64(len(a)-len(b))))

	return math.Min(1.0, base+countBonus)
}

// majorProgramSimilarity scores field-of-study overlap: same major 1.0,
// same program 0.8, whichever is higher.
func majorProgramSimilarity(a, b *core.Profile) float64 {
	var score float64
	if equalFoldNonEmpty(a.Major, b.Major) {
		score = 1.0
	}
	if equalFoldNonEmpty(a.Program, b.Program) {
		score = math.Max(score, 0.8)
	}
	return score
}

func equalFoldNonEmpty(a, b string) bool {
	return a != "" && strings.EqualFold(a, b)
}
