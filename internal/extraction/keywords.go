// Package extraction turns free-text job descriptions into ranked keyword
// sets and structured requirement facts using deterministic pattern rules.
package extraction

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// MaxKeywords is the number of top-weighted tokens returned by Keywords.
const MaxKeywords = 50

var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "a": true, "an": true,
}

// IsStopWord reports whether the token is in the fixed stop-word set.
func IsStopWord(token string) bool {
	return stopWords[token]
}

// Tokenize lowercases the text, strips punctuation except + # . - (so tokens
// like c++, c# and node.js survive), splits on whitespace, and drops
// stop-words, tokens of two characters or fewer, and purely numeric tokens.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case r == '+' || r == '#' || r == '.' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		tok = strings.Trim(tok, ".-")
		if len(tok) <= 2 || stopWords[tok] || isNumeric(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// Keywords returns the top tokens of the text ranked by a single-document
// TF-IDF-like weight, freq * ln(1 + total/freq). The weight favors terms
// that are both frequent and distinguishing within the one document; no
// corpus-wide statistics are available at runtime.
func Keywords(text string) []string {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	freq := make(map[string]int)
	for _, tok := range tokens {
		freq[tok]++
	}

	type weighted struct {
		word   string
		weight float64
	}
	ranked := make([]weighted, 0, len(freq))
	total := float64(len(tokens))
	for word, f := range freq {
		w := float64(f) * math.Log(1+total/float64(f))
		ranked = append(ranked, weighted{word: word, weight: w})
	}

	// Ties break alphabetically so ranking is deterministic across runs.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].weight != ranked[j].weight {
			return ranked[i].weight > ranked[j].weight
		}
		return ranked[i].word < ranked[j].word
	})

	n := len(ranked)
	if n > MaxKeywords {
		n = MaxKeywords
	}
	keywords := make([]string, 0, n)
	for _, r := range ranked[:n] {
		keywords = append(keywords, r.word)
	}
	return keywords
}
