// Package dirtree snapshots a directory tree and reports statistics about it.
//
// It builds the snapshot with package folder, optionally in parallel, traverses it
// sequentially or with splitting cursors, and aggregates per-extension counts,
// the largest sub-trees and glob matches through a collector that parallel
// traversal workers share.
package dirtree
