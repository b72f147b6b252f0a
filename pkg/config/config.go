// Package config provides configuration management functionality for the cleaner.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Config represents the application configuration.
type Config struct {
	// ProjectRoot is the directory scanned for source files.
	ProjectRoot string `yaml:"project_root"`
	// ResourceFile is the key/value resource file, relative to ProjectRoot unless absolute.
	ResourceFile string `yaml:"resource_file"`
	// Extensions lists the source file extensions to scan, with their leading dot.
	Extensions []string `yaml:"extensions"`
	// Separator splits a resource line into key and value.
	Separator string `yaml:"separator"`
	// Accessor is the token stripped from source text before matching.
	Accessor string `yaml:"accessor"`
	// TrimKeys trims surrounding whitespace from parsed keys.
	TrimKeys bool `yaml:"trim_keys"`
	// Exclude lists glob patterns of root-relative paths that are not scanned.
	Exclude []string `yaml:"exclude"`
	// IgnoreKeys lists glob patterns of keys that are never reported as unused.
	IgnoreKeys []string `yaml:"ignore_keys"`
}

// ResourcePath returns the location of the resource file.
func (c Config) ResourcePath() string {
	if filepath.IsAbs(c.ResourceFile) {
		return c.ResourceFile
	}
	return filepath.Join(c.ProjectRoot, c.ResourceFile)
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.ProjectRoot == "" {
		return ErrProjectRootEmpty
	}
	if c.ResourceFile == "" {
		return ErrResourceFileEmpty
	}
	if c.Separator == "" {
		return ErrSeparatorEmpty
	}
	if len(c.Extensions) == 0 {
		return ErrNoExtensions
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
	}
	// Exclude patterns match slash-separated paths, ignore patterns plain keys.
	for _, pattern := range c.Exclude {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
		}
	}
	for _, pattern := range c.IgnoreKeys {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
		}
	}
	return nil
}
