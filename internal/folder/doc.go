// Package folder builds read-only, in-memory snapshots of directory trees and
// traverses them sequentially or in parallel.
//
// A snapshot is a Folder: a composite owning its sub-folders and documents, with a
// cached size counting itself and every descendant. Build constructs one from a
// listing.Lister, optionally fanning out across goroutines at every level.
//
// Parallel traversal is driven by Cursors, splitting iterators that hand halves
// of their remaining work to other workers. Two strategies exist:
//
//   - Recursive splits along sub-folder boundaries without copying anything, at
//     the cost of uneven halves when the tree is skewed.
//   - Batch flattens the tree once into a slice and splits index ranges evenly,
//     at the cost of an O(n) pass and buffer before the first element.
//
// Sequential traversal ignores the strategy and walks the tree depth-first.
package folder
