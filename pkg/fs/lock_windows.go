//go:build windows

package fs

import (
	"fmt"
	"os"
)

// FileLock creates filename + ".lock" exclusively; an existing lock file means
// another run holds the lock. flock is not available on Windows.
func (f *realFS) FileLock(filename string) (func(), error) {
	lockPath := filename + ".lock"

	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileLock, filename)
		}
		return nil, err
	}

	return func() {
		_ = lockFile.Close()
		_ = os.Remove(lockPath)
	}, nil
}
