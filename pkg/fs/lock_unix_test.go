//go:build integration && !windows

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLock_ReplacedLockFileIsNotHeld(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "Localizable.strings.lock")
	require.NoError(t, os.WriteFile(lockPath, nil, 0644))

	stale, err := os.Open(lockPath)
	require.NoError(t, err)
	defer stale.Close()
	assert.True(t, isLockedPath(stale, lockPath))

	// Another process unlinks and recreates the lock file
	require.NoError(t, os.Remove(lockPath))
	assert.False(t, isLockedPath(stale, lockPath))
	require.NoError(t, os.WriteFile(lockPath, nil, 0644))
	assert.False(t, isLockedPath(stale, lockPath))
}
