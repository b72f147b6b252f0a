package discovery

import "errors"

// Error definitions for discovery package.
var (
	ErrDiscovery      = errors.New("failed to list source files under")
	ErrNotDirectory   = errors.New("not a directory")
	ErrRootNotFound   = errors.New("project root does not exist")
	ErrPartialWalk    = errors.New("some entries could not be read")
	ErrInvalidPattern = errors.New("invalid exclude pattern")
)
