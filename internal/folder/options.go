package folder

import (
	"runtime"
)

// DefaultThreshold is the remaining size at or below which cursors stop splitting.
const DefaultThreshold = 64

// Option configures Build, NewCursor and the traversal drivers.
type Option func(*options)

type options struct {
	workers   int
	threshold uint64
	onList    func(path string, children int)
}

func newOptions(opts []Option) options {
	o := options{
		workers:   runtime.GOMAXPROCS(0),
		threshold: DefaultThreshold,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithWorkers bounds concurrency: the number of concurrently running child tasks per
// directory level in Build, and the number of worker goroutines in parallel
// traversal. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithThreshold sets the remaining size at or below which cursors refuse to split.
// Zero is treated as one, so that a single entity is never split.
func WithThreshold(n uint64) Option {
	return func(o *options) {
		o.threshold = max(n, 1)
	}
}

// WithOnList registers fn to be called after each successful directory listing
// during Build. In parallel builds fn is called from multiple goroutines.
func WithOnList(fn func(path string, children int)) Option {
	return func(o *options) {
		o.onList = fn
	}
}
