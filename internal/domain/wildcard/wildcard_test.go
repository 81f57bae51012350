package wildcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_NoWildcardsIsEquality(t *testing.T) {
	// Without wildcards, matching degenerates to string equality.
	assert.True(t, Match("hello", "hello"))
	assert.False(t, Match("hello", "hell"))
	assert.False(t, Match("hell", "hello"))
	assert.False(t, Match("hello", "hellx"))
}

func TestMatch_StarMatchesAnything(t *testing.T) {
	// A single '*' matches any text, including empty.
	assert.True(t, Match("", "*"))
	assert.True(t, Match("a", "*"))
	assert.True(t, Match("abcdef", "*"))
	assert.True(t, Match("abcdef", "***"))
}

func TestMatch_EmptyPattern(t *testing.T) {
	// Empty pattern matches only empty text.
	assert.True(t, Match("", ""))
	assert.False(t, Match("a", ""))
}

func TestMatch_EmptyTextNeedsAllStars(t *testing.T) {
	// Empty text matches iff the pattern is all '*'.
	assert.True(t, Match("", "**"))
	assert.False(t, Match("", "?"))
	assert.False(t, Match("", "*a*"))
}

func TestMatch_QuestionConsumesExactlyOne(t *testing.T) {
	assert.True(t, Match("ab", "a?"))
	assert.False(t, Match("a", "a?"))
	assert.False(t, Match("abc", "a?"))
}

func TestMatch_PinnedScenario(t *testing.T) {
	// "a*b?d" cannot consume all of "abcdefg": after matching 'd' the
	// suffix "efg" remains with the pattern exhausted.
	assert.False(t, Match("abcdefg", "a*b?d"))
}

func TestMatch_StarDecompositions(t *testing.T) {
	assert.True(t, Match("aaabbbccc", "a*b*c"))
	assert.True(t, Match("adceb", "*a*b"))
	assert.False(t, Match("acdcb", "a*c?b"))
}

func TestMatch_TrailingStarAfterLiteral(t *testing.T) {
	assert.True(t, Match("abcdefg", "a*b?d*"))
	assert.True(t, Match("axbyd", "a*b?d*"))
}

func TestFindStarts_SuffixAnchors(t *testing.T) {
	// "b*" matches every suffix beginning with 'b'.
	assert.Equal(t, []int{1, 3}, FindStarts("abcb", "b*"))
}

func TestFindStarts_NoMatches(t *testing.T) {
	assert.Nil(t, FindStarts("abc", "z*"))
}

func TestFindStarts_EveryOffset(t *testing.T) {
	// "*" matches every non-empty suffix.
	assert.Equal(t, []int{0, 1, 2}, FindStarts("abc", "*"))
}

func TestMatch_Idempotent(t *testing.T) {
	// Repeated invocation yields identical results; no hidden state.
	first := Match("aaabbbccc", "a*b*c")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Match("aaabbbccc", "a*b*c"))
	}
}
