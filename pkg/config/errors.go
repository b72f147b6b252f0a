package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("configuration file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrProjectRootEmpty  = errors.New("project_root cannot be empty")
	ErrResourceFileEmpty = errors.New("resource_file cannot be empty")
	ErrSeparatorEmpty    = errors.New("separator cannot be empty")
	ErrNoExtensions      = errors.New("at least one source extension is required")
	ErrInvalidExtension  = errors.New("extension must start with a dot")
	ErrInvalidPattern    = errors.New("invalid glob pattern")
)
