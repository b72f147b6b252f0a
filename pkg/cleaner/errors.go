package cleaner

import "errors"

// Error definitions for cleaner package.
var (
	// ErrConfiguration is returned by Run when the configuration cannot be used.
	ErrConfiguration = errors.New("invalid cleaner configuration")
	// ErrRemoveAborted is recorded when delete is skipped after earlier failures.
	ErrRemoveAborted = errors.New("not removing unused localized strings")
)
