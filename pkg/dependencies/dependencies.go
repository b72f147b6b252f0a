// Package dependencies provides a centralized dependency container for the cleaner.
package dependencies

import (
	"errors"

	"github.com/lerenn/localized-cleaner/pkg/config"
	"github.com/lerenn/localized-cleaner/pkg/fs"
	"github.com/lerenn/localized-cleaner/pkg/logger"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing     = errors.New("fs dependency is required but not set")
	ErrConfigMissing = errors.New("config dependency is required but not set")
	ErrLoggerMissing = errors.New("logger dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS     fs.FS
	Config config.Manager
	Logger logger.Logger
}

// New creates a new Dependencies instance with the real file system and a
// silent logger. Config is left nil as it needs a path, see WithConfig.
func New() *Dependencies {
	return &Dependencies{
		FS:     fs.NewFS(),
		Logger: logger.NewNoopLogger(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	switch {
	case d.FS == nil:
		return ErrFSMissing
	case d.Config == nil:
		return ErrConfigMissing
	case d.Logger == nil:
		return ErrLoggerMissing
	}
	return nil
}
