//go:build e2e

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const e2eStrings = "/* Greetings */\nGREETING = \"Hi\";\n\nFAREWELL = \"Bye\";\n"

func setupProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"Base.lproj/Localizable.strings": e2eStrings,
		"App/ContentView.swift":          "Text(GREETING.localized)",
		".build/Generated.swift":         "FAREWELL",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestE2E_ListUnused(t *testing.T) {
	root := setupProject(t)

	out, err := execute("--root", root, "--config", filepath.Join(root, ".lc.yaml"), "--unused")

	require.NoError(t, err)
	assert.Contains(t, out, "Removing unused localized strings")
	assert.Contains(t, out, "-> Unused localized strings found:\n\nFAREWELL\n\n")
	assert.Contains(t, out, "-> Total unused localized strings found: 1\n")
}

func TestE2E_Delete(t *testing.T) {
	root := setupProject(t)
	resource := filepath.Join(root, "Base.lproj", "Localizable.strings")

	out, err := execute("-r", root, "-c", filepath.Join(root, ".lc.yaml"), "-d")

	require.NoError(t, err)
	assert.Contains(t, out, "Successfully removed 1 unused localized string(s).")

	content, err := os.ReadFile(resource)
	require.NoError(t, err)
	assert.Equal(t, "/* Greetings */\nGREETING = \"Hi\";\n\n", string(content))

	// A second run has nothing left to remove
	out, err = execute("-r", root, "-c", filepath.Join(root, ".lc.yaml"), "-d")
	require.NoError(t, err)
	assert.Contains(t, out, "-> Total unused localized strings found: 0\n")
	assert.Contains(t, out, "No unused localized strings to remove.")
}

func TestE2E_StrictWithMissingRoot(t *testing.T) {
	root := setupProject(t)
	missing := filepath.Join(root, "missing")

	out, err := execute("-r", missing, "-s", filepath.Join(root, "Base.lproj", "Localizable.strings"),
		"-c", filepath.Join(root, ".lc.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "-> Total unused localized strings found: 2\n")

	_, err = execute("-r", missing, "-c", filepath.Join(root, ".lc.yaml"), "--strict")
	assert.ErrorIs(t, err, ErrRunFailures)
}
