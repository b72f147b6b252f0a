package main

import (
	"io"

	"github.com/lerenn/localized-cleaner/pkg/cleaner"
	"github.com/lerenn/localized-cleaner/pkg/config"
	"github.com/lerenn/localized-cleaner/pkg/dependencies"
	"github.com/lerenn/localized-cleaner/pkg/fs"
)

// newCleaner builds the Cleaner used by the root command. Tests replace it.
var newCleaner = func(configPath string, out, errOut io.Writer) (cleaner.Cleaner, error) {
	fsys := fs.NewFS()
	return cleaner.NewCleaner(cleaner.NewCleanerParams{
		Dependencies: dependencies.New().
			WithFS(fsys).
			WithConfig(config.NewManager(fsys, configPath)),
		Output:    out,
		ErrOutput: errOut,
	})
}
