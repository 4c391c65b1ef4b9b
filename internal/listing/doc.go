// Package listing provides the depth-1 directory listing capability the tree
// builder consumes, plus an independent recursive counter used to verify built
// snapshots.
//
// Listers never recurse: recursion is driven by the caller, one List call per
// directory.
package listing
