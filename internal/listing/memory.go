package listing

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
)

// Memory is an in-memory directory hierarchy implementing Lister.
// Children are listed in insertion order. Safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	root   string
	dirs   map[string][]Child
	denied map[string]struct{}
}

// NewMemory creates an empty hierarchy rooted at root.
func NewMemory(root string) *Memory {
	root = filepath.Clean(root)

	return &Memory{
		root:   root,
		dirs:   map[string][]Child{root: {}},
		denied: make(map[string]struct{}),
	}
}

// Root returns the root path of the hierarchy.
func (m *Memory) Root() string {
	return m.root
}

// AddFile adds a file at rel (slash separated, relative to the root), creating
// missing parent directories. It returns the full path of the file.
func (m *Memory) AddFile(rel string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	full := m.resolve(rel)
	parent := m.ensureDir(filepath.Dir(full))

	m.dirs[parent] = append(m.dirs[parent], Child{Path: full})

	return full
}

// AddDir adds an (possibly empty) directory at rel, creating missing parents.
// It returns the full path of the directory.
func (m *Memory) AddDir(rel string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ensureDir(m.resolve(rel))
}

// Deny makes listing the directory at rel fail with fs.ErrPermission.
func (m *Memory) Deny(rel string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.denied[m.resolve(rel)] = struct{}{}
}

// List implements Lister.
func (m *Memory) List(_ context.Context, path string) ([]Child, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path = filepath.Clean(path)

	if _, ok := m.denied[path]; ok {
		return nil, fmt.Errorf("reading directory %q: %w", path, fs.ErrPermission)
	}

	children, ok := m.dirs[path]
	if !ok {
		return nil, fmt.Errorf("reading directory %q: %w", path, fs.ErrNotExist)
	}

	out := make([]Child, len(children))
	copy(out, children)

	return out, nil
}

func (m *Memory) resolve(rel string) string {
	rel = strings.TrimPrefix(filepath.FromSlash(rel), string(filepath.Separator))

	return filepath.Join(m.root, rel)
}

// ensureDir registers dir and all of its ancestors below the root.
// Callers must hold the write lock.
func (m *Memory) ensureDir(dir string) string {
	if _, ok := m.dirs[dir]; ok {
		return dir
	}

	parent := m.ensureDir(filepath.Dir(dir))

	m.dirs[dir] = []Child{}
	m.dirs[parent] = append(m.dirs[parent], Child{Path: dir, IsDir: true})

	return dir
}
