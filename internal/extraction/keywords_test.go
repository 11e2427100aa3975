package extraction

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_BasicText(t *testing.T) {
	tokens := Tokenize("We are looking for a Senior Go Developer with Kubernetes experience")

	assert.Contains(t, tokens, "senior")
	assert.Contains(t, tokens, "developer")
	assert.Contains(t, tokens, "kubernetes")
	assert.Contains(t, tokens, "experience")
	// "We", "are", "for", "a", "with" are stop-words or too short
	assert.NotContains(t, tokens, "we")
	assert.NotContains(t, tokens, "are")
	assert.NotContains(t, tokens, "a")
}

func TestTokenize_PreservesSymbolTokens(t *testing.T) {
	tokens := Tokenize("Experience with C++, C# and Node.js required")

	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "node.js")
	// "c#" falls under the two-character minimum; the skill vocabulary
	// catches it instead
	assert.NotContains(t, tokens, "c#")
}

func TestTokenize_DropsNumericAndShortTokens(t *testing.T) {
	tokens := Tokenize("5 years 2024 AI ML engineering")

	assert.NotContains(t, tokens, "5")
	assert.NotContains(t, tokens, "2024")
	assert.NotContains(t, tokens, "ai")
	assert.Contains(t, tokens, "years")
	assert.Contains(t, tokens, "engineering")
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \n\t  "))
}

func TestKeywords_RanksFrequentTermsFirst(t *testing.T) {
	text := strings.Repeat("kubernetes ", 10) + "docker docker python"

	keywords := Keywords(text)
	require.NotEmpty(t, keywords)

	assert.Equal(t, "kubernetes", keywords[0])
	assert.Contains(t, keywords, "docker")
	assert.Contains(t, keywords, "python")
}

func TestKeywords_CapsAtFifty(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 80; i++ {
		sb.WriteString(fmt.Sprintf("uniqueterm%02d ", i))
	}

	keywords := Keywords(sb.String())
	assert.Len(t, keywords, MaxKeywords)
}

func TestKeywords_Deterministic(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta alpha beta"

	first := Keywords(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Keywords(text))
	}
}

func TestKeywords_Empty(t *testing.T) {
	assert.Nil(t, Keywords(""))
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.True(t, IsStopWord("with"))
	assert.False(t, IsStopWord("kubernetes"))
}
