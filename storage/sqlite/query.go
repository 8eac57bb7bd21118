package sqlite

import (
	"strings"
)

// DefaultSynonyms returns the built-in query expansion map. Keys are
// single lower-case query terms; values are appended to the term list so
// a search for "python" also matches profiles mentioning its ecosystem.
func DefaultSynonyms() map[string][]string {
	return map[string][]string{
		"python": {"pandas", "numpy", "scikit-learn", "sklearn", "flask", "fastapi", "pytest", "pyspark"},
		"ml":     {"machine learning", "scikit-learn", "xgboost", "random forest"},
		"nlp":    {"transformers", "bert", "text classification", "tokenization"},
		"data":   {"analytics", "analysis", "etl", "sql"},
	}
}

// ExpandQuery lower-cases the raw query, splits it into terms, and appends
// synonyms from the expansion map. Multi-word synonyms stay intact so they
// match as phrases. The result is de-duplicated preserving order.
func ExpandQuery(raw string, synonyms map[string][]string) []string {
	terms := strings.Fields(strings.ToLower(raw))

	expanded := make([]string, 0, len(terms))
	expanded = append(expanded, terms...)
	for _, term := range terms {
		expanded = append(expanded, synonyms[term]...)
	}

	seen := make(map[string]bool, len(expanded))
	out := make([]string, 0, len(expanded))
	for _, term := range expanded {
		if !seen[term] {
			seen[term] = true
			out = append(out, term)
		}
	}
	return out
}

// quoteTerm turns one term into a quoted FTS5 string. Hyphens, underscores
// and slashes become spaces so the tokenizer sees separate words, and
// embedded quotes are escaped by doubling. Returns "" for terms that
// collapse to nothing.
func quoteTerm(term string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '/':
			return ' '
		}
		return r
	}, term)
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return ""
	}
	clean = strings.ReplaceAll(clean, `"`, `""`)
	return `"` + clean + `"`
}

// toMatchExpression OR-joins the quoted terms into an FTS5 MATCH
// expression. With no usable terms it returns the empty phrase, which
// matches nothing.
func toMatchExpression(terms []string) string {
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		if q := quoteTerm(term); q != "" {
			quoted = append(quoted, q)
		}
	}
	if len(quoted) == 0 {
		return `""`
	}
	return strings.Join(quoted, " OR ")
}

// occurrenceScore is the crude relevance signal: total occurrences of the
// raw query terms in the document content, with a floor of 1 so any row
// the engine matched keeps a positive score.
func occurrenceScore(content string, rawTerms []string) float64 {
	lower := strings.ToLower(content)
	hits := 0
	for _, term := range rawTerms {
		hits += strings.Count(lower, term)
	}
	if hits < 1 {
		hits = 1
	}
	return float64(hits)
}
