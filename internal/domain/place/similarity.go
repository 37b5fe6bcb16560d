package place

import (
	"strings"
	"unicode"
)

// Default thresholds used by the deduplication engine.  Names tolerate more
// variation than addresses: two records for the same place often differ in
// branch suffixes, while addresses for distinct places can be nearly
// identical down to the building number.
const (
	NameSimilarityThreshold    = 0.85
	AddressSimilarityThreshold = 0.90
)

// branchSuffixes are trailing location-branch designators stripped during
// normalization, so that "스타벅스 강남점" and "스타벅스 강남" compare equal.
var branchSuffixes = []string{"지점", "본점", "분점", "매장", "점", "branch", "store", "outlet"}

// NormalizeName canonicalizes a place name for comparison: lowercase, all
// whitespace removed, non-alphanumeric runes removed (the name's own script
// is kept — Hangul, Kanji and any other letters survive), and a trailing
// branch designator stripped.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}

	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	normalized := sb.String()

	for _, suffix := range branchSuffixes {
		if trimmed := strings.TrimSuffix(normalized, suffix); trimmed != normalized && trimmed != "" {
			normalized = trimmed
			break
		}
	}
	return normalized
}

// levenshtein computes the classic single-character insert/delete/substitute
// edit distance between two rune slices using the two-row formulation.
func levenshtein(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)
	for j := range previous {
		previous[j] = j
	}

	for i, ra := range a {
		current[0] = i + 1
		for j, rb := range b {
			insertion := previous[j+1] + 1
			deletion := current[j] + 1
			substitution := previous[j]
			if ra != rb {
				substitution++
			}
			current[j+1] = min3(insertion, deletion, substitution)
		}
		previous, current = current, previous
	}
	return previous[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// Similarity returns a similarity score in [0,1] for two name strings:
//
//	1.0  — equal after normalization
//	0.9  — one normalized name contains the other
//	else — 1 - editDistance/max(len)
//
// The function is symmetric and deterministic; identical inputs always
// produce identical outputs.
func Similarity(a, b string) float64 {
	na := NormalizeName(a)
	nb := NormalizeName(b)

	if na == nb {
		return 1.0
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 0.9
	}

	ra := []rune(na)
	rb := []rune(nb)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 0.0
	}
	return 1.0 - float64(levenshtein(ra, rb))/float64(maxLen)
}

// AreSimilar reports whether two names score at or above the threshold and
// are therefore treated as referring to the same real-world place.
func AreSimilar(a, b string, threshold float64) bool {
	return Similarity(a, b) >= threshold
}

//Personal.AI order the ending
