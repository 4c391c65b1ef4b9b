package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/dirtree/internal/config"
	"github.com/idelchi/dirtree/internal/dirtree"
	"github.com/idelchi/dirtree/internal/folder"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json"}

// Execute runs the CLI with the process arguments. An interrupt cancels the build.
func (c CLI) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.Command().ExecuteContext(ctx)
}

// Command returns the root command.
func (c CLI) Command() *cobra.Command {
	var (
		options  dirtree.Options
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "dirtree [flags] [path]",
		Short: "Snapshot a directory tree and traverse it sequentially or in parallel",
		Long: heredoc.Doc(`
			dirtree builds an in-memory snapshot of a directory tree and reports statistics about it.

			Positional Arguments:
			  path                   Directory to snapshot. Defaults to current directory if not specified.

			Modes:
			  --parallel-build lists and builds sibling directories concurrently at every level.
			  --parallel traverses the snapshot with splitting cursors spread over --workers goroutines.

			Strategies:
			  recursive   splits along sub-folder boundaries; no copying, uneven halves on skewed trees.
			  batch       flattens the snapshot once and splits index ranges evenly.

			Defaults for most flags can be set in a YAML file (see --config).
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.Version {
				fmt.Fprintln(cmd.OutOrStdout(), c.version)

				return nil
			}

			if len(args) == 0 {
				options.Path = "."
			} else {
				options.Path = args[0]
			}

			if err := resolve(cmd.Flags(), &options, strategy); err != nil {
				return err
			}

			return logic(cmd.Context(), options, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.BoolVarP(&options.ParallelBuild, "parallel-build", "b", false, "Build the snapshot in parallel")
	flags.BoolVarP(&options.Parallel, "parallel", "p", false, "Traverse the snapshot in parallel")
	flags.StringVarP(&strategy, "strategy", "s", folder.Recursive.String(), "Splitting strategy: recursive or batch")
	flags.Uint64Var(&options.Threshold, "threshold", folder.DefaultThreshold, "Remaining size at or below which cursors stop splitting")
	flags.IntVarP(&options.Workers, "workers", "w", 0, "Concurrent tasks per level and traversal workers (0 = number of CPUs)")
	flags.IntVarP(&options.TopN, "top", "t", 10, "Number of largest sub-trees to display")
	flags.StringSliceVarP(&options.Matches, "match", "m", []string{}, "Glob patterns to count matches for (e.g., '**/*.go')")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	flags.BoolVar(&options.Verify, "verify", false, "Verify the snapshot against an independent walk")
	flags.StringVarP(&options.Config, "config", "c", config.DefaultPath(), "Path of the YAML defaults file")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")

	return cmd
}

// resolve fills options from the config file for flags that were not set, then
// validates them.
func resolve(flags *pflag.FlagSet, options *dirtree.Options, strategy string) error {
	cfg, err := config.Load(options.Config)
	if err != nil {
		return err
	}

	if !flags.Changed("parallel-build") {
		options.ParallelBuild = cfg.ParallelBuild
	}

	if !flags.Changed("parallel") {
		options.Parallel = cfg.Parallel
	}

	if flags.Changed("strategy") {
		if options.Strategy, err = folder.ParseStrategy(strategy); err != nil {
			return err
		}
	} else {
		options.Strategy = cfg.Strategy
	}

	if !flags.Changed("threshold") {
		options.Threshold = cfg.Threshold
	}

	if !flags.Changed("workers") {
		options.Workers = cfg.Workers
	}

	if !flags.Changed("top") {
		options.TopN = cfg.Top
	}

	if !flags.Changed("match") {
		options.Matches = cfg.Matches
	}

	if !flags.Changed("output") && cfg.Output != "" {
		options.Output = cfg.Output
	}

	if !slices.Contains(allowedOutputs, options.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	if options.Workers < 0 {
		return errors.New("workers cannot be negative")
	}

	if options.TopN < 0 {
		return errors.New("top cannot be negative")
	}

	return nil
}
