package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShortTextSingleChunk(t *testing.T) {
	text := "Mythology\n1. Who is Jupiter?\nA. king\nB. queen\nC. god\nD. titan\n"

	chunks, err := Split(text, DefaultChunkSize)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Contains(t, chunks[0].Content, "Who is Jupiter?")
}

func TestSplitBreaksAtQuestionBoundaries(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("FJCL State Forum\n")
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&sb, "%d. Question number %d with some padding text\n", i, i)
		sb.WriteString("A. alpha\nB. beta\nC. gamma\nD. delta\n")
	}

	chunks, err := Split(sb.String(), 300)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	// The header stays with the first chunk.
	assert.Contains(t, chunks[0].Content, "FJCL State Forum")

	// Every chunk after the first begins on a question line.
	for _, c := range chunks[1:] {
		first := strings.SplitN(c.Content, "\n", 2)[0]
		assert.Regexp(t, `^\d+\. `, first)
	}

	// Nothing is lost.
	joined := strings.Join(collect(chunks), "\n")
	for i := 1; i <= 20; i++ {
		assert.Contains(t, joined, fmt.Sprintf("%d. Question number %d", i, i))
	}
}

func TestSplitOversizedQuestionKeptWhole(t *testing.T) {
	long := "1. " + strings.Repeat("very long question ", 50) + "\nA. a\nB. b\nC. c\nD. d"

	chunks, err := Split(long, 100)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
}

func TestSplitEmpty(t *testing.T) {
	chunks, err := Split("   \n  ", 100)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestSplitInvalidSize(t *testing.T) {
	_, err := Split("text", 0)
	assert.ErrorIs(t, err, ErrInvalidChunkSize)
}

func collect(chunks []Chunk) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Content
	}
	return out
}
