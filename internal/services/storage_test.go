package services

import (
	"mime/multipart"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileRejectsUnsupportedExtension(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	// Extension check happens before the file is opened.
	_, _, err := storage.SaveFile(&multipart.FileHeader{Filename: "resume.exe"}, "resume")
	assert.ErrorContains(t, err, "invalid file extension")

	_, _, err = storage.SaveFile(&multipart.FileHeader{Filename: "resume.txt"}, "resume")
	assert.Error(t, err)
}

func TestGetFilePath(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	assert.Equal(t, filepath.Join(dir, "abc.pdf"), storage.GetFilePath("abc.pdf"))
}

func TestEnsureUploadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "resumes")
	storage := NewStorageService(dir)

	require.NoError(t, storage.EnsureUploadDir())
	assert.DirExists(t, dir)
}
