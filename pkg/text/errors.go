package text

import "errors"

// ErrInvalidEncoding is returned when data is neither UTF-8 nor BOM-marked UTF-16.
var ErrInvalidEncoding = errors.New("content is not valid UTF-8 or UTF-16 text")
