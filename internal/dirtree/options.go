package dirtree

import (
	"time"

	"github.com/idelchi/dirtree/internal/folder"
)

// Options configures snapshot analysis and CLI behavior.
type Options struct {
	// Path is the directory to snapshot.
	Path string
	// ParallelBuild indicates whether to build the snapshot in parallel.
	ParallelBuild bool
	// Parallel indicates whether to traverse the snapshot in parallel.
	Parallel bool
	// Strategy selects how cursors split during parallel traversal.
	Strategy folder.Strategy
	// Threshold is the remaining size at or below which cursors stop splitting.
	Threshold uint64
	// Workers bounds build tasks per level and traversal goroutines (0 = GOMAXPROCS).
	Workers int
	// TopN is the number of largest sub-trees to report.
	TopN int
	// Matches contains doublestar patterns to count matches for.
	Matches []string
	// Verify indicates whether to check the snapshot against an independent walk.
	Verify bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Config is the path of the YAML defaults file.
	Config string
	// Version indicates whether to show version and exit.
	Version bool
}

// folderOptions translates the tuning knobs into folder options.
func (o Options) folderOptions() []folder.Option {
	opts := []folder.Option{folder.WithWorkers(o.Workers)}

	if o.Threshold > 0 {
		opts = append(opts, folder.WithThreshold(o.Threshold))
	}

	return opts
}
