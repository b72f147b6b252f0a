//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	fs := NewFS()
	testFile := filepath.Join(t.TempDir(), "Localizable.strings")
	testData := []byte("GREETING = \"Hi\";\n")

	err := fs.WriteFileAtomic(testFile, testData, 0644)
	require.NoError(t, err)

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testData, content)

	info, err := os.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteFileAtomic_Overwrite(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "Localizable.strings")

	require.NoError(t, fs.WriteFileAtomic(testFile, []byte("old"), 0644))
	require.NoError(t, fs.WriteFileAtomic(testFile, []byte("new"), 0600))

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), content)

	info, err := os.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// No temporary file is left behind
	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	fs := NewFS()
	testFile := filepath.Join(t.TempDir(), "missing", "Localizable.strings")

	err := fs.WriteFileAtomic(testFile, []byte("data"), 0644)
	assert.Error(t, err)
}
