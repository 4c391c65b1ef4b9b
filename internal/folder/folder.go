package folder

import (
	"fmt"
	"path/filepath"
)

// Folder is a composite entity representing one directory and everything below it.
//
// A Folder is mutated only by the builder that owns it; once returned from Build it
// is read-only and may be shared freely between goroutines.
type Folder struct {
	path       string
	subFolders []*Folder
	documents  []*Document
	size       uint64
}

// newFolder creates an empty folder counting only itself.
func newFolder(path string) *Folder {
	return &Folder{path: path, size: 1}
}

// Path implements Dirent.
func (f *Folder) Path() string { return f.path }

// Name implements Dirent.
func (f *Folder) Name() string { return filepath.Base(f.path) }

// Size implements Dirent.
func (f *Folder) Size() uint64 { return f.size }

// IsFolder implements Dirent.
func (f *Folder) IsFolder() bool { return true }

// SubFolders returns the folders directly inside f. The slice must not be modified.
func (f *Folder) SubFolders() []*Folder { return f.subFolders }

// Documents returns the documents directly inside f. The slice must not be modified.
func (f *Folder) Documents() []*Document { return f.documents }

// Children implements Dirent.
func (f *Folder) Children() []Dirent {
	children := make([]Dirent, 0, len(f.subFolders)+len(f.documents))

	for _, sub := range f.subFolders {
		children = append(children, sub)
	}

	for _, doc := range f.documents {
		children = append(children, doc)
	}

	return children
}

// merge appends the children of other to f and recomputes the size of f.
// other must not be used afterwards.
func (f *Folder) merge(other *Folder) *Folder {
	f.subFolders = append(f.subFolders, other.subFolders...)
	f.documents = append(f.documents, other.documents...)

	f.computeSize()

	return f
}

// computeSize sets the size of f from its direct children.
func (f *Folder) computeSize() {
	f.size = f.expectedSize()
}

func (f *Folder) expectedSize() uint64 {
	size := uint64(1) + uint64(len(f.documents))

	for _, sub := range f.subFolders {
		size += sub.size
	}

	return size
}

// Validate checks the size invariant for f and every folder below it.
func (f *Folder) Validate() error {
	if want := f.expectedSize(); f.size != want {
		return fmt.Errorf("%w: folder %q has size %d, children add up to %d",
			ErrInvariantViolation, f.path, f.size, want)
	}

	for _, sub := range f.subFolders {
		if err := sub.Validate(); err != nil {
			return err
		}
	}

	return nil
}
