package folder

import (
	"iter"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// bufferPerWorker is the number of entities each traversal worker may queue ahead
// of a parallel sequence's consumer.
const bufferPerWorker = 64

// Traverse returns the entities of f, f included, each exactly once.
//
// Without parallel, the sequence is a deterministic depth-first walk: a folder,
// then its sub-folders recursively, then its documents. The strategy is ignored.
//
// With parallel, cursors created by strategy are split across up to WithWorkers
// goroutines and their output is merged; the order is unspecified. Stopping the
// range loop early stops all workers before the loop returns.
//
// The sequence may be ranged over any number of times.
func (f *Folder) Traverse(parallel bool, strategy Strategy, opts ...Option) iter.Seq[Dirent] {
	if !parallel {
		return func(yield func(Dirent) bool) {
			walk(f, yield)
		}
	}

	return func(yield func(Dirent) bool) {
		o := newOptions(opts)
		out := make(chan Dirent, o.workers*bufferPerWorker)
		done := make(chan struct{})

		go func() {
			defer close(out)

			ForEach(f, strategy, func(d Dirent) bool {
				select {
				case out <- d:
					return true
				case <-done:
					return false
				}
			}, opts...)
		}()

		defer func() {
			close(done)

			// Drain until the workers are gone.
			for range out {
			}
		}()

		for d := range out {
			if !yield(d) {
				return
			}
		}
	}
}

// Stream returns the sequential depth-first sequence of f.
func (f *Folder) Stream() iter.Seq[Dirent] {
	return f.Traverse(false, Recursive)
}

// ParallelStream returns the parallel sequence of f, split by strategy.
func (f *Folder) ParallelStream(strategy Strategy, opts ...Option) iter.Seq[Dirent] {
	return f.Traverse(true, strategy, opts...)
}

// ForEach calls fn for every entity of root from up to WithWorkers goroutines,
// fork-join style: a cursor splits while it can, handing each split to a new worker
// if one is free, and then drains what it kept. fn must be safe for concurrent use;
// returning false stops the traversal as soon as the workers notice.
//
// ForEach returns once every worker has finished, reporting the number of cursors
// that were drained.
func ForEach(root *Folder, strategy Strategy, fn func(Dirent) bool, opts ...Option) int {
	o := newOptions(opts)

	var (
		g       errgroup.Group
		stopped atomic.Bool
		drained atomic.Int64
		run     func(Cursor)
	)

	// The calling goroutine is a worker too.
	g.SetLimit(o.workers - 1)

	run = func(first Cursor) {
		pending := []Cursor{first}

		for len(pending) > 0 {
			c := pending[len(pending)-1]
			pending = pending[:len(pending)-1]

			for !stopped.Load() {
				split := c.TrySplit()
				if split == nil {
					break
				}

				if !g.TryGo(func() error { run(split); return nil }) {
					// No idle worker: keep the split and stop splitting for now.
					pending = append(pending, split)

					break
				}
			}

			drained.Add(1)

			for !stopped.Load() {
				d, ok := c.Next()
				if !ok {
					break
				}

				if !fn(d) {
					stopped.Store(true)
				}
			}
		}
	}

	run(NewCursor(root, strategy, opts...))

	_ = g.Wait() // workers never fail

	return int(drained.Load())
}

// walk yields f, then walks its sub-folders, then yields its documents.
// It returns false as soon as yield does.
func walk(f *Folder, yield func(Dirent) bool) bool {
	if !yield(f) {
		return false
	}

	for _, sub := range f.subFolders {
		if !walk(sub, yield) {
			return false
		}
	}

	for _, doc := range f.documents {
		if !yield(doc) {
			return false
		}
	}

	return true
}
