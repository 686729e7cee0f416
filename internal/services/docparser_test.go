package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	raw := "  John Doe  \n\n\n  Software Engineer \n\n"
	assert.Equal(t, "John Doe\nSoftware Engineer", CleanText(raw))

	assert.Equal(t, "", CleanText("   \n \n"))
}

func TestExtractTextMissingFile(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractText("/nonexistent/resume.pdf")
	assert.ErrorContains(t, err, "does not exist")
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text resume"), 0644))

	parser := NewDocumentParserService()

	_, err := parser.ExtractText(path)
	assert.ErrorContains(t, err, "unsupported file type")
}
