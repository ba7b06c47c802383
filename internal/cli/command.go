// Package cli implements the dutop command-line interface.
package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// options carries the flag values for one invocation.
type options struct {
	topN        int
	depth       int
	excludes    []string
	followLinks bool
	workers     int
	format      string
	noColor     bool
	verbose     bool
	debug       bool
}

// allowedFormats lists the accepted --format values.
var allowedFormats = []string{"human", "json"}

// New builds the dutop root command.
func New(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "dutop [flags] [path]",
		Short: "Analyze disk usage and display the top directories",
		Long: heredoc.Doc(`
			dutop reports the disk space consumed under a directory,
			attributed to each of its immediate children, largest first.

			Sizes are actual allocated bytes (as with du), not apparent
			file lengths, and hard-linked files are counted once.
		`),
		Example: heredoc.Doc(`
			# Top 10 consumers under the current directory
			dutop

			# Top 20 under /var, skipping caches
			dutop -n 20 -x '*cache*' /var

			# Machine-readable output
			dutop -f json /data
		`),
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if !slices.Contains(allowedFormats, opts.format) {
				return fmt.Errorf("invalid output format %q: must be one of %v", opts.format, allowedFormats)
			}

			if opts.topN < 0 {
				return errors.New("top count cannot be negative")
			}

			if opts.workers < 0 {
				return errors.New("worker count cannot be negative")
			}

			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			return run(path, opts)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.IntVarP(&opts.topN, "top", "n", 10, "Number of top directories to display")
	flags.IntVarP(&opts.depth, "depth", "d", -1, "Maximum traversal depth (negative = unlimited)")
	flags.StringSliceVarP(&opts.excludes, "exclude", "x", nil, "Glob patterns to exclude, matched against entry names")
	flags.BoolVarP(&opts.followLinks, "follow-links", "L", false, "Follow symbolic links")
	flags.IntVarP(&opts.workers, "workers", "j", 0, "Number of parallel workers (0 = auto)")
	flags.StringVarP(&opts.format, "format", "f", "human", "Output format: human or json")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	return cmd
}
