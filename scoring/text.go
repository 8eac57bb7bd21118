package scoring

import (
	"strings"
	"unicode"

	"github.com/poiesic/peermatch/core"
)

// Title words that carry no matching signal
var titleNoiseWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true,
	"intern": true, "junior": true, "senior": true,
}

// Corporate suffixes that say nothing about the industry
var companyNoiseWords = map[string]bool{
	"inc": true, "corp": true, "ltd": true, "llc": true,
	"company": true, "group": true,
}

// experienceTerms extracts the matching vocabulary of an experience list:
// meaningful job-title words plus up to two company words per entry.
// First-appearance order is preserved so derived strings are stable.
func experienceTerms(entries []core.Experience) []string {
	var terms []string
	seen := make(map[string]bool)

	add := func(word string) {
		if !seen[word] {
			seen[word] = true
			terms = append(terms, word)
		}
	}

	for _, e := range entries {
		for _, word := range splitWords(e.Title) {
			if len(word) > 2 && !titleNoiseWords[word] {
				add(word)
			}
		}

		kept := 0
		for _, word := range splitWords(e.Company) {
			if kept == 2 {
				break
			}
			if len(word) > 3 && !companyNoiseWords[word] {
				add(word)
				kept++
			}
		}
	}

	return terms
}

// splitWords lowercases and splits on whitespace, treating dashes and
// underscores as separators.
func splitWords(s string) []string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(s))
	return strings.Fields(cleaned)
}

// commonStrings returns the unique values of a that also appear in b,
// in a's order of first appearance.
func commonStrings(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}

	var common []string
	seen := make(map[string]bool)
	for _, v := range a {
		if inB[v] && !seen[v] {
			seen[v] = true
			common = append(common, v)
		}
	}
	return common
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// titleCase renders a value like "computer science" as "Computer Science".
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
