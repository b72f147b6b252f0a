// Package cleaner finds the localization keys a project never uses and removes them.
package cleaner

import (
	"io"
	"os"

	"github.com/lerenn/localized-cleaner/pkg/dependencies"
	"github.com/lerenn/localized-cleaner/pkg/logger"
	"github.com/lerenn/localized-cleaner/pkg/report"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=cleaner.go -destination=mocks/cleaner.gen.go -package=mocks

// Cleaner interface runs the load, discover, scan, report and remove phases.
type Cleaner interface {
	// Run executes one full scan. Phase failures are reported and collected in
	// the result; only configuration problems return an error.
	Run(opts RunOpts) (*Result, error)
	// SetLogger sets the logger for this Cleaner instance.
	SetLogger(logger logger.Logger)
}

// RunOpts contains the options of a single run.
type RunOpts struct {
	// ProjectRoot overrides the configured project root when set.
	ProjectRoot string
	// ResourceFile overrides the configured resource file when set.
	ResourceFile string
	// ListUnused prints every unused key, not only their count.
	ListUnused bool
	// Delete rewrites the resource file without the unused keys.
	Delete bool
	// DryRun reports what Delete would remove without writing.
	DryRun bool
	// Format selects the report format, text when empty.
	Format report.Format
}

// Result holds the data produced by each phase of a run.
type Result struct {
	ResourcePath string
	Files        []string
	Report       report.Report
	// Removed lists the resource lines dropped, or that would be with DryRun.
	Removed []string
	// Errors lists every failure the run recovered from.
	Errors []error
}

// NewCleanerParams contains parameters for creating a new Cleaner instance.
type NewCleanerParams struct {
	Dependencies *dependencies.Dependencies
	// Output receives the report, stdout when nil.
	Output io.Writer
	// ErrOutput receives errors for non-text formats, stderr when nil.
	ErrOutput io.Writer
}

type realCleaner struct {
	deps   *dependencies.Dependencies
	out    io.Writer
	errOut io.Writer
}

// NewCleaner creates a new Cleaner instance.
func NewCleaner(params NewCleanerParams) (Cleaner, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	out, errOut := params.Output, params.ErrOutput
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	return &realCleaner{
		deps:   deps,
		out:    out,
		errOut: errOut,
	}, nil
}

// SetLogger sets the logger for this Cleaner instance.
func (c *realCleaner) SetLogger(logger logger.Logger) {
	c.deps.Logger = logger
}
