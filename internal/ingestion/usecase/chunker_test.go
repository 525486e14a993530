package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordTokenizer counts whitespace-separated words.
type wordTokenizer struct{}

func (wordTokenizer) Count(text string) int { return len(strings.Fields(text)) }

func TestChunker_ShortTextIsOneChunk(t *testing.T) {
	c := NewChunker(wordTokenizer{}, 512, 50)
	assert.Equal(t, []string{"CDC issued new guidance."}, c.Split("  CDC issued new guidance.  "))
}

func TestChunker_SplitsOnWords(t *testing.T) {
	c := NewChunker(wordTokenizer{}, 4, 0)
	assert.Equal(t, []string{"a b c d", "e f g h"}, c.Split("a b c d e f g h"))
}

func TestChunker_Overlap(t *testing.T) {
	c := NewChunker(wordTokenizer{}, 4, 1)
	assert.Equal(t, []string{"a b c d", "d e f g", "g h"}, c.Split("a b c d e f g h"))
}

func TestChunker_PrefersParagraphs(t *testing.T) {
	c := NewChunker(wordTokenizer{}, 4, 0)
	got := c.Split("one two\n\nthree four five")
	assert.Equal(t, []string{"one two", "three four five"}, got)
}

func TestChunker_EmptyText(t *testing.T) {
	c := NewChunker(wordTokenizer{}, 4, 0)
	assert.Empty(t, c.Split("   "))
}

func TestChunkID_Deterministic(t *testing.T) {
	c := NewChunker(wordTokenizer{}, 4, 1)
	text := "a b c d e f g h"

	ids := func() []string {
		var out []string
		for _, chunk := range c.Split(text) {
			out = append(out, ChunkID("1790", chunk))
		}
		return out
	}
	first, second := ids(), ids()
	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first[0], "1790-"))
	assert.Len(t, first[0], len("1790-")+10)
	assert.NotEqual(t, first[0], first[1])
}
