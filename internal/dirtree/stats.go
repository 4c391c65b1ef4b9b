package dirtree

import (
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/idelchi/dirtree/internal/folder"
)

// ExtStat represents statistics for a file extension.
type ExtStat struct {
	// Count is the number of documents with this extension.
	Count int64 `json:"count"`
}

// FolderStat represents a folder and the size of its sub-tree.
type FolderStat struct {
	// Path is the folder path, relative to the snapshot root.
	Path string `json:"path"`
	// Size is the number of entities in the sub-tree, the folder included.
	Size uint64 `json:"size"`
}

// Stats holds aggregate statistics for a snapshot.
type Stats struct {
	// Root is the snapshotted directory.
	Root string `json:"root"`
	// Size is the size of the root folder.
	Size uint64 `json:"size"`
	// Visited is the number of entities the traversal produced.
	Visited uint64 `json:"visited"`
	// FolderCount is the number of folders, the root included.
	FolderCount int64 `json:"folder_count"`
	// DocumentCount is the number of documents.
	DocumentCount int64 `json:"document_count"`
	// Listings is the number of directories listed while building.
	Listings int64 `json:"listings"`
	// ExtStats maps document extensions to their statistics.
	ExtStats map[string]ExtStat `json:"ext_stats"`
	// TopFolders contains the N largest sub-trees below the root.
	TopFolders []FolderStat `json:"top_folders"`
	// MatchCount is the number of entities matching any match pattern.
	MatchCount int64 `json:"match_count"`
	// Strategy is the splitting strategy used for traversal.
	Strategy folder.Strategy `json:"strategy"`
	// ParallelBuild indicates whether the snapshot was built in parallel.
	ParallelBuild bool `json:"parallel_build"`
	// Parallel indicates whether the snapshot was traversed in parallel.
	Parallel bool `json:"parallel"`
	// Cursors is the number of cursors the traversal drained.
	Cursors int `json:"cursors"`
	// Verified indicates whether the snapshot passed verification.
	Verified bool `json:"verified"`
	// BuildElapsed is the time taken to build the snapshot.
	BuildElapsed time.Duration `json:"build_elapsed"`
	// TraverseElapsed is the time taken to traverse the snapshot.
	TraverseElapsed time.Duration `json:"traverse_elapsed"`
	// TopN is the number of top results tracked.
	TopN int `json:"top_n"`
}

// collector aggregates statistics from concurrent traversal workers using a mutex.
type collector struct {
	mu            sync.Mutex // Protect concurrent access
	root          string
	topN          int
	matcher       matcher
	extStats      map[string]ExtStat
	topFolders    []FolderStat
	listings      int64
	listed        int64
	visited       uint64
	folderCount   int64
	documentCount int64
	matchCount    int64
}

// newCollector creates a collector for the snapshot of root.
func newCollector(root string, topN int, m matcher) *collector {
	return &collector{
		root:       root,
		topN:       topN,
		matcher:    m,
		extStats:   make(map[string]ExtStat),
		topFolders: make([]FolderStat, 0),
	}
}

// addListing records one directory listing of n entries. Called concurrently by
// parallel builds.
func (c *collector) addListing(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listings++
	c.listed += int64(n)
}

// progress returns the number of listed directories and entries so far.
func (c *collector) progress() (int64, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.listings, c.listed
}

// add records one traversed entity. Called concurrently by parallel traversal.
func (c *collector) add(d folder.Dirent) {
	rel := c.relative(d.Path())
	matched := c.matcher.match(rel)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.visited++

	if matched {
		c.matchCount++
	}

	if d.IsFolder() {
		c.folderCount++

		if rel != "." {
			// Collect all folders, we'll sort and trim later
			c.topFolders = append(c.topFolders, FolderStat{Path: rel, Size: d.Size()})
		}

		return
	}

	c.documentCount++

	ext := filepath.Ext(d.Name())
	stat := c.extStats[ext]
	stat.Count++
	c.extStats[ext] = stat
}

// relative returns path relative to the snapshot root, in slash format.
func (c *collector) relative(path string) string {
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		rel = path
	}

	return filepath.ToSlash(rel)
}

// finalize produces the final Stats from the collected data.
// It extracts the top N sub-trees by size, smallest first for display.
func (c *collector) finalize() *Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Sort by size (largest first, then by path) and trim to top N
	sort.Slice(c.topFolders, func(i, j int) bool {
		if c.topFolders[i].Size != c.topFolders[j].Size {
			return c.topFolders[i].Size > c.topFolders[j].Size
		}

		return c.topFolders[i].Path < c.topFolders[j].Path
	})

	if len(c.topFolders) > c.topN {
		c.topFolders = c.topFolders[:c.topN]
	}

	// Reverse for display (smallest first, displayed in reverse)
	topFolders := make([]FolderStat, len(c.topFolders))
	for i := range c.topFolders {
		topFolders[i] = c.topFolders[len(c.topFolders)-1-i]
	}

	return &Stats{
		Root:          c.root,
		Visited:       c.visited,
		FolderCount:   c.folderCount,
		DocumentCount: c.documentCount,
		Listings:      c.listings,
		ExtStats:      c.extStats,
		TopFolders:    topFolders,
		MatchCount:    c.matchCount,
		TopN:          c.topN,
	}
}
