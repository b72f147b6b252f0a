package main

import (
	"fmt"

	"github.com/lerenn/localized-cleaner/pkg/cleaner"
	"github.com/lerenn/localized-cleaner/pkg/config"
	"github.com/lerenn/localized-cleaner/pkg/logger"
	"github.com/lerenn/localized-cleaner/pkg/report"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	unused       bool
	delete       bool
	dryRun       bool
	verbose      bool
	strict       bool
	root         string
	resourceFile string
	configPath   string
	format       string
}

func createRootCmd() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "lc [flags]",
		Short: "Find and remove unused localized strings",
		Long: `Find the keys of Base.lproj/Localizable.strings that no Swift source file
of the project references, print how many there are and optionally remove them.

Examples:
  lc
  lc --unused
  lc --root ./MyApp --unused --delete
  lc --delete --dry-run
  lc --format yaml`,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.unused, "unused", "u", false, "List the unused localized strings")
	flags.BoolVarP(&opts.delete, "delete", "d", false, "Delete the unused localized strings")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "With --delete, show what would be removed without writing")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	flags.BoolVar(&opts.strict, "strict", false, "Exit with an error if any file could not be processed")
	flags.StringVarP(&opts.root, "root", "r", "", "Project root to scan (default from config, then \".\")")
	flags.StringVarP(&opts.resourceFile, "strings", "s", "", "Resource file, relative to the project root")
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultConfigPath, "Specify a custom config file path")
	flags.StringVarP(&opts.format, "format", "f", string(report.FormatText), "Report format: text or yaml")

	return rootCmd
}

func run(cmd *cobra.Command, opts rootOptions) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	c, err := newCleaner(opts.configPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if opts.verbose {
		c.SetLogger(logger.NewWriterLogger(cmd.ErrOrStderr()))
	}

	result, err := c.Run(cleaner.RunOpts{
		ProjectRoot:  opts.root,
		ResourceFile: opts.resourceFile,
		ListUnused:   opts.unused,
		Delete:       opts.delete,
		DryRun:       opts.dryRun,
		Format:       format,
	})
	if err != nil {
		return err
	}

	if opts.strict && len(result.Errors) > 0 {
		return fmt.Errorf("%w: %d error(s)", ErrRunFailures, len(result.Errors))
	}
	return nil
}
