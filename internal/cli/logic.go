package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirtree/internal/dirtree"
)

func logic(ctx context.Context, options dirtree.Options, out io.Writer) error {
	enableProgress := strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(listings, entries int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(listings, entries int64) {
			msg := fmt.Sprintf("Snapshotting… %s directories, %s entries",
				humanize.Comma(listings), humanize.Comma(entries))
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	stats, err := dirtree.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(stats, out)
	case "table":
		return PrintTable(stats, out)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
