// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrFileLock is returned when the lock next to a file is already held.
	ErrFileLock = errors.New("file is locked by another process")

	// ErrPathResolution is returned when a path cannot be expanded.
	ErrPathResolution = errors.New("path resolution failed")
)
