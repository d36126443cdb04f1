// Package fuzzy ranks free text against a short, possibly misspelled query.
package fuzzy

import (
	"strings"
)

// Field is a piece of searchable text; matches inside it are scaled by Weight.
type Field struct {
	Text   string
	Weight float64
}

// LevenshteinDistance counts the single-rune edits needed to turn s1 into s2,
// ignoring case and repeated whitespace.
func LevenshteinDistance(s1, s2 string) int {
	r1 := []rune(normalizeString(s1))
	r2 := []rune(normalizeString(s2))

	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}

// Threshold is the typo tolerance for a query of this length.
func Threshold(query string) int {
	n := len([]rune(normalizeString(query)))
	switch {
	case n <= 3:
		return 1
	case n >= 8:
		return 3
	default:
		return 2
	}
}

// Match reports whether query appears in text exactly, as a word prefix, or within
// Threshold edits of some word.
func Match(query, text string) bool {
	query = normalizeString(query)
	text = normalizeString(text)
	if query == "" {
		return false
	}
	if strings.Contains(text, query) {
		return true
	}

	threshold := Threshold(query)
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, query) || LevenshteinDistance(query, word) <= threshold {
			return true
		}
	}
	return false
}

// Score sums weighted relevance of query over fields. Zero means no match.
func Score(query string, fields ...Field) float64 {
	query = normalizeString(query)
	if query == "" {
		return 0
	}

	threshold := Threshold(query)
	score := 0.0
	for _, f := range fields {
		text := normalizeString(f.Text)
		if text == "" {
			continue
		}

		if strings.Contains(text, query) {
			s := 100.0
			if containsWord(text, query) {
				s += 50.0
			}
			score += s * f.Weight
			continue
		}

		best := 0.0
		for _, word := range strings.Fields(text) {
			s := 0.0
			if dist := LevenshteinDistance(query, word); dist <= threshold {
				s = 50.0 - float64(dist)*15
			}
			if strings.HasPrefix(word, query) {
				s += 40.0
			}
			if s > best {
				best = s
			}
		}
		score += best * f.Weight
	}
	return score
}

// normalizeString lowercases s and collapses whitespace.
func normalizeString(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}
