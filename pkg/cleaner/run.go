package cleaner

import (
	"fmt"

	"github.com/lerenn/localized-cleaner/pkg/config"
	"github.com/lerenn/localized-cleaner/pkg/discovery"
	"github.com/lerenn/localized-cleaner/pkg/report"
	"github.com/lerenn/localized-cleaner/pkg/resource"
	"github.com/lerenn/localized-cleaner/pkg/scanner"
)

// Run executes load, discover, scan, report and, if asked, remove. Each phase
// gets the previous phase's output; a failing phase is reported and the run
// continues with an empty value.
func (c *realCleaner) Run(opts RunOpts) (*Result, error) {
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}

	format := opts.Format
	if format == "" {
		format = report.FormatText
	}
	c.deps.Logger.Logf("Configuration: %s", c.deps.Config.GetConfigPath())

	printer := report.NewPrinter(c.out, c.errOut, format)
	result := &Result{ResourcePath: cfg.ResourcePath()}
	recordErr := func(err error) {
		printer.Error(err)
		result.Errors = append(result.Errors, err)
	}

	printer.Banner()

	parse := resource.ParseOptions{Separator: cfg.Separator, TrimKeys: cfg.TrimKeys}
	table, err := resource.Load(c.deps.FS, result.ResourcePath, parse)
	if err != nil {
		recordErr(err)
	}
	c.deps.Logger.Logf("Loaded %d key(s) from %s", table.Len(), result.ResourcePath)

	printer.Progress("Scanning files...")
	result.Files, err = discovery.Discover(c.deps.FS, discovery.Params{
		Root:       cfg.ProjectRoot,
		Extensions: cfg.Extensions,
		Exclude:    cfg.Exclude,
	})
	if err != nil {
		recordErr(err)
	}
	switch {
	case len(result.Files) > 0:
		c.deps.Logger.Logf("Found %d source file(s) under %s", len(result.Files), cfg.ProjectRoot)
	case err == nil:
		printer.Progress("No source files found in the path provided.")
	}

	printer.Progress("Searching for unused strings...")
	scan := scanner.Scan(c.deps.FS, table, scanner.Params{
		Files:    result.Files,
		Accessor: cfg.Accessor,
		Logger:   c.deps.Logger,
	})
	for _, failure := range scan.Failures {
		recordErr(failure)
	}

	result.Report, err = report.Build(table, cfg.IgnoreKeys)
	if err != nil {
		return nil, err
	}
	if err := printer.Report(result.Report, opts.ListUnused); err != nil {
		return nil, err
	}

	if opts.Delete {
		c.remove(printer, result, parse, opts.DryRun, recordErr)
	}

	return result, nil
}

func (c *realCleaner) remove(
	printer *report.Printer, result *Result, parse resource.ParseOptions, dryRun bool, recordErr func(error),
) {
	// A key reads as unused when the file using it could not be read, so any
	// earlier failure makes the unused list unsafe to delete.
	if !dryRun && len(result.Errors) > 0 {
		recordErr(fmt.Errorf("%w: %d error(s) reported, %s unchanged",
			ErrRemoveAborted, len(result.Errors), result.ResourcePath))
		return
	}

	removed, err := resource.Remove(c.deps.FS, resource.RemoveParams{
		Path:    result.ResourcePath,
		Unused:  result.Report.Unused,
		Options: parse,
		DryRun:  dryRun,
	})
	result.Removed = removed.Lines
	if err != nil {
		recordErr(err)
		return
	}

	for _, line := range removed.Lines {
		c.deps.Logger.Logf("Removed: %s", line)
	}
	if removed.Written {
		c.deps.Logger.Logf("Wrote %s as %s", result.ResourcePath, removed.Encoding)
	}

	switch {
	case dryRun:
		printer.Success("Dry run: %d line(s) would be removed from %s.", len(removed.Lines), result.ResourcePath)
	case removed.Written:
		printer.Success("Successfully removed %d unused localized string(s). %s updated.",
			len(removed.Lines), result.ResourcePath)
	default:
		printer.Success("No unused localized strings to remove. %s unchanged.", result.ResourcePath)
	}
}

// config loads the configuration and applies the run overrides.
func (c *realCleaner) config(opts RunOpts) (config.Config, error) {
	cfg, err := c.deps.Config.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	if opts.ProjectRoot != "" {
		if cfg.ProjectRoot, err = c.deps.FS.ExpandPath(opts.ProjectRoot); err != nil {
			return config.Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}
	if opts.ResourceFile != "" {
		cfg.ResourceFile = opts.ResourceFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return cfg, nil
}
