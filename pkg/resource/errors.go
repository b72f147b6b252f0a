package resource

import "errors"

// Error definitions for resource package.
var (
	ErrResourceRead  = errors.New("failed to read resource file")
	ErrResourceWrite = errors.New("failed to rewrite resource file")
)
