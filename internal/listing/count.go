package listing

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// Count walks root recursively with fastwalk and returns the number of entries
// found, root included. Unlike the builder it stops at the first error.
//
// workers <= 0 selects fastwalk's default.
func Count(ctx context.Context, root string, workers int) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if info, err := os.Stat(root); err != nil {
		return 0, fmt.Errorf("accessing path %q: %w", root, err)
	} else if !info.IsDir() {
		return 0, fmt.Errorf("path %q is not a directory", root)
	}

	root = filepath.Clean(root)

	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: workers,
	}

	var count atomic.Uint64

	err := fastwalk.Walk(conf, root, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %q: %w", path, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Root is counted once below, whether or not fastwalk reports it.
		if filepath.Clean(path) != root {
			count.Add(1)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return count.Load() + 1, nil
}
