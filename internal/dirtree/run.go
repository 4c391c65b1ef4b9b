package dirtree

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/idelchi/dirtree/internal/folder"
	"github.com/idelchi/dirtree/internal/listing"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ErrSnapshotMismatch reports a snapshot that disagrees with an independent walk.
var ErrSnapshotMismatch = errors.New("snapshot does not match filesystem")

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// startProgressReporter invokes hook(listings, entries) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.progress())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run snapshots the directory at opt.Path and returns statistics about it.
//
// The snapshot is built in parallel if opt.ParallelBuild is set, and traversed by
// opt.Workers cursors split with opt.Strategy if opt.Parallel is set. With
// opt.Verify, the snapshot's size invariant is checked and its size compared with
// an independent fastwalk count.
//
// The build can be cancelled via ctx. Progress updates are sent to progressHook
// if provided.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Stats, error) {
	return run(ctx, listing.OS{}, opt, progressHook)
}

func run(ctx context.Context, lister listing.Lister, opt Options, progressHook func(int64, int64)) (*Stats, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	if opt.TopN <= 0 {
		opt.TopN = 10
	}

	m, err := newMatcher(opt.Matches)
	if err != nil {
		return nil, err
	}

	collector := newCollector(opt.Path, opt.TopN, m)

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)

	log.printf("\n")
	log.printf("[debug]: path: %s\n", opt.Path)
	log.printf("[debug]: parallel build: %t, parallel traversal: %t, strategy: %s\n",
		opt.ParallelBuild, opt.Parallel, opt.Strategy)

	for _, p := range m {
		log.printf("[debug]:   match: %s\n", p)
	}

	start := time.Now()

	buildOpts := append(opt.folderOptions(), folder.WithOnList(func(path string, n int) {
		log.printf("[debug]: listed %s (%d entries)\n", filepath.ToSlash(path), n)
		collector.addListing(n)
	}))

	root, err := folder.Build(ctx, lister, opt.Path, opt.ParallelBuild, buildOpts...)
	if err != nil {
		return nil, fmt.Errorf("building snapshot: %w", err)
	}

	buildElapsed := time.Since(start)

	log.printf("[debug]: built snapshot of %d entities in %v\n", root.Size(), buildElapsed)

	start = time.Now()
	cursors := 1

	if opt.Parallel {
		cursors = folder.ForEach(root, opt.Strategy, func(d folder.Dirent) bool {
			collector.add(d)

			return true
		}, opt.folderOptions()...)
	} else {
		for d := range root.Traverse(false, opt.Strategy) {
			collector.add(d)
		}
	}

	traverseElapsed := time.Since(start)

	log.printf("[debug]: traversed with %d cursor(s) in %v\n", cursors, traverseElapsed)

	stats := collector.finalize()
	stats.Size = root.Size()
	stats.Strategy = opt.Strategy
	stats.ParallelBuild = opt.ParallelBuild
	stats.Parallel = opt.Parallel
	stats.Cursors = cursors
	stats.BuildElapsed = buildElapsed
	stats.TraverseElapsed = traverseElapsed

	if opt.Verify {
		if err := verify(ctx, root, stats, opt.Workers); err != nil {
			return nil, err
		}

		stats.Verified = true
	}

	return stats, nil
}

// verify checks root against its own invariant, the traversal and a fresh walk of
// the filesystem.
func verify(ctx context.Context, root *folder.Folder, stats *Stats, workers int) error {
	if err := root.Validate(); err != nil {
		return err
	}

	if stats.Visited != root.Size() {
		return fmt.Errorf("%w: traversal visited %d of %d entities", ErrSnapshotMismatch, stats.Visited, root.Size())
	}

	count, err := listing.Count(ctx, root.Path(), workers)
	if err != nil {
		return fmt.Errorf("counting entries: %w", err)
	}

	if count != root.Size() {
		return fmt.Errorf("%w: snapshot has %d entities, walk found %d", ErrSnapshotMismatch, root.Size(), count)
	}

	return nil
}
