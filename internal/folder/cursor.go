package folder

// Cursor is a splitting iterator over the entities of a snapshot.
//
// A cursor is owned by one goroutine at a time. Cursors returned by TrySplit cover
// work disjoint from what the original keeps, and can be handed to other goroutines.
type Cursor interface {
	// Next returns the next entity of the remaining range, or false once it is empty.
	Next() (Dirent, bool)
	// TrySplit moves part of the remaining range into a new cursor and returns it.
	// It returns nil when the remaining range is too small to be worth splitting.
	TrySplit() Cursor
	// EstimateSize returns the number of entities left in the remaining range.
	EstimateSize() uint64
}

// NewCursor returns a cursor over root and every entity below it, splitting
// according to strategy. WithThreshold sets the split granularity.
func NewCursor(root *Folder, strategy Strategy, opts ...Option) Cursor {
	o := newOptions(opts)

	if strategy == Batch {
		return newBatchCursor(root, o.threshold)
	}

	return newRecursiveCursor(root, o.threshold)
}
