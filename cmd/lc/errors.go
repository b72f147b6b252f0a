package main

import "errors"

// ErrRunFailures is returned in strict mode when the run recovered from errors.
var ErrRunFailures = errors.New("errors were reported during the run")
