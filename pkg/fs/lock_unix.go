//go:build !windows

package fs

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// FileLock takes a non-blocking exclusive flock on filename + ".lock".
// The returned function releases the lock and removes the lock file.
func (f *realFS) FileLock(filename string) (func(), error) {
	lockPath := filename + ".lock"

	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		_ = lockFile.Close()
		if errors.Is(err, syscall.EWOULDBLOCK) {
			return nil, fmt.Errorf("%w: %s", ErrFileLock, filename)
		}
		return nil, err
	}

	// A previous holder may have unlinked the file between our open and flock,
	// leaving us a lock on an inode nobody else will ever see.
	if !isLockedPath(lockFile, lockPath) {
		_ = lockFile.Close()
		return nil, fmt.Errorf("%w: %s", ErrFileLock, filename)
	}

	return func() {
		// Unlink while still holding the lock so no one locks a removed inode.
		_ = os.Remove(lockPath)
		_ = syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)
		_ = lockFile.Close()
	}, nil
}

// isLockedPath reports whether path still names the file open as locked.
func isLockedPath(locked *os.File, path string) bool {
	held, err := locked.Stat()
	if err != nil {
		return false
	}
	current, err := os.Stat(path)
	if err != nil {
		return false
	}
	return os.SameFile(held, current)
}
