package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextShortInput(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("short resume text", 1000, 100)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short resume text", chunks[0])
}

func TestChunkTextEmptyInput(t *testing.T) {
	chunker := NewTextChunker()

	assert.Empty(t, chunker.ChunkText("", 1000, 100))
	assert.Empty(t, chunker.ChunkText("\n\n\n", 1000, 100))
}

func TestChunkTextSplitsLongInput(t *testing.T) {
	chunker := NewTextChunker()

	paragraph := strings.Repeat("word ", 60) // ~300 chars
	text := strings.Join([]string{paragraph, paragraph, paragraph, paragraph}, "\n\n")

	chunks := chunker.ChunkText(text, 400, 50)
	require.Greater(t, len(chunks), 1)

	for _, chunk := range chunks {
		assert.NotEmpty(t, strings.TrimSpace(chunk))
	}
}

func TestChunkTextCoversAllContent(t *testing.T) {
	chunker := NewTextChunker()

	text := "alpha beta gamma\n\ndelta epsilon zeta\n\neta theta iota"
	chunks := chunker.ChunkText(text, 25, 0)

	joined := strings.Join(chunks, " ")
	for _, word := range []string{"alpha", "delta", "iota"} {
		assert.Contains(t, joined, word)
	}
}
