//go:build integration

package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_WalkDir(t *testing.T) {
	fs := NewFS()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "b", "c"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b", "c", "z.swift"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.swift"), nil, 0644))

	var visited []string
	err := fs.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		require.NoError(t, err)
		if !d.IsDir() {
			rel, relErr := filepath.Rel(root, path)
			require.NoError(t, relErr)
			visited = append(visited, filepath.ToSlash(rel))
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.swift", "b/c/z.swift"}, visited)
}

func TestFS_WalkDir_MissingRoot(t *testing.T) {
	fs := NewFS()
	root := filepath.Join(t.TempDir(), "missing")

	err := fs.WalkDir(root, func(_ string, _ iofs.DirEntry, err error) error {
		return err
	})

	assert.Error(t, err)
	assert.True(t, fs.IsNotExist(err))
}

func TestFS_WalkDir_SymlinkedRoot(t *testing.T) {
	fs := NewFS()
	target := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(target, "App"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "App", "View.swift"), nil, 0644))
	link := filepath.Join(t.TempDir(), "link-to-app")
	require.NoError(t, os.Symlink(target, link))

	var visited []string
	err := fs.WalkDir(link, func(path string, d iofs.DirEntry, err error) error {
		require.NoError(t, err)
		visited = append(visited, path)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		link,
		filepath.Join(link, "App"),
		filepath.Join(link, "App", "View.swift"),
	}, visited)
}
