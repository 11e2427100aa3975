// Package similarity provides the string-similarity primitive shared by the
// match scorers.
package similarity

import "strings"

// Score returns a similarity in [0,1] between two strings: 1.0 for equality,
// 0.8 when one contains the other, otherwise the Jaccard coefficient of
// their padded character trigrams. Inputs are compared case-sensitively;
// callers lowercase first.
func Score(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.8
	}

	ta := trigrams(a)
	tb := trigrams(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	intersection := 0
	union := make(map[string]bool, len(ta)+len(tb))
	for t := range ta {
		union[t] = true
		if tb[t] {
			intersection++
		}
	}
	for t := range tb {
		union[t] = true
	}
	return float64(intersection) / float64(len(union))
}

// trigrams returns the set of three-character windows over the string padded
// with two spaces on each side, so short strings still produce signal.
func trigrams(s string) map[string]bool {
	padded := "  " + s + "  "
	set := make(map[string]bool, len(padded))
	for i := 0; i+3 <= len(padded); i++ {
		set[padded[i:i+3]] = true
	}
	return set
}
