package report

import "errors"

// Error definitions for report package.
var (
	ErrInvalidPattern = errors.New("invalid ignore pattern")
	ErrUnknownFormat  = errors.New("unknown output format")
)
