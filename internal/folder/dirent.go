package folder

import (
	"path/filepath"
)

// Dirent is an entity of a snapshot: a Document or a Folder.
type Dirent interface {
	// Path is the filesystem path the entity was built from.
	Path() string
	// Name is the last element of Path.
	Name() string
	// Size is the number of entities rooted here, the entity itself included.
	Size() uint64
	// IsFolder reports whether the entity is a Folder.
	IsFolder() bool
	// Children returns the sub-folders followed by the documents. Empty for documents.
	Children() []Dirent
}

// Document is a leaf entity representing one file.
type Document struct {
	path string
}

// NewDocument creates a document for path.
func NewDocument(path string) *Document {
	return &Document{path: path}
}

// Path implements Dirent.
func (d *Document) Path() string { return d.path }

// Name implements Dirent.
func (d *Document) Name() string { return filepath.Base(d.path) }

// Size implements Dirent. A document always counts as one.
func (d *Document) Size() uint64 { return 1 }

// IsFolder implements Dirent.
func (d *Document) IsFolder() bool { return false }

// Children implements Dirent.
func (d *Document) Children() []Dirent { return nil }
