package folder

// batchCursor iterates a pre-order flattening of a tree. Split cursors share the
// flattened slice and only ever read from it.
type batchCursor struct {
	items      []Dirent
	start, end int
	threshold  uint64
}

func newBatchCursor(root *Folder, threshold uint64) *batchCursor {
	items := make([]Dirent, 0, root.size)

	walk(root, func(d Dirent) bool {
		items = append(items, d)

		return true
	})

	return &batchCursor{
		items:     items,
		end:       len(items),
		threshold: threshold,
	}
}

func (c *batchCursor) Next() (Dirent, bool) {
	if c.start >= c.end {
		return nil, false
	}

	d := c.items[c.start]
	c.start++

	return d, true
}

func (c *batchCursor) TrySplit() Cursor {
	if c.EstimateSize() <= c.threshold {
		return nil
	}

	mid := c.start + (c.end-c.start)/2
	split := &batchCursor{
		items:     c.items,
		start:     mid,
		end:       c.end,
		threshold: c.threshold,
	}
	c.end = mid

	return split
}

func (c *batchCursor) EstimateSize() uint64 {
	return uint64(c.end - c.start) //nolint:gosec // end >= start
}
