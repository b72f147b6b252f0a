package scanner

import "errors"

// ErrFileRead is matched by every FileError.
var ErrFileRead = errors.New("failed to read source file")
