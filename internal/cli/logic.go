package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/UnTypeBeats/DuTop/internal/dutop"
)

// newLogger builds a stderr logger at the level implied by the flags.
func newLogger(opts *options) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	switch {
	case opts.debug:
		logger.SetLevel(logrus.DebugLevel)
	case opts.verbose:
		logger.SetLevel(logrus.InfoLevel)
	default:
		logger.SetLevel(logrus.WarnLevel)
	}

	return logger
}

func run(path string, opts *options) error {
	logger := newLogger(opts)

	cfg := dutop.Config{
		MaxDepth:    opts.depth,
		Exclude:     opts.excludes,
		FollowLinks: opts.followLinks,
		Workers:     opts.workers,
	}

	enableProgress := opts.format != "json" &&
		!opts.debug && !opts.verbose &&
		isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr.
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := dutop.Analyze(context.Background(), path, cfg, opts.topN, logger, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if opts.format == "json" {
		return PrintJSON(result, os.Stdout)
	}

	useColor := !opts.noColor && isatty.IsTerminal(os.Stdout.Fd())

	return PrintTable(result, os.Stdout, useColor)
}
