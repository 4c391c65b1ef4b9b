package listing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Child is one immediate entry of a listed directory.
type Child struct {
	// Path is the full path of the entry (parent joined with its name).
	Path string
	// IsDir reports whether the entry should be descended into.
	IsDir bool
}

// Lister lists the immediate children of a directory.
type Lister interface {
	// List returns the depth-1 children of path, or an error if path is missing,
	// unreadable or not a directory.
	List(ctx context.Context, path string) ([]Child, error)
}

// OS lists directories of the local filesystem.
//
// Symbolic links are reported as non-directories and never followed.
type OS struct{}

// List implements Lister using os.ReadDir. Children are returned sorted by name.
func (OS) List(_ context.Context, path string) ([]Child, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", path, err)
	}

	children := make([]Child, 0, len(entries))

	for _, e := range entries { //nolint:varnamelen // e is standard for element in range
		children = append(children, Child{
			Path:  filepath.Join(path, e.Name()),
			IsDir: e.IsDir(),
		})
	}

	return children, nil
}
