package folder

// recursiveCursor splits along the shape of the tree.
//
// Its remaining range is the union of three disjoint parts: singles, entities
// yielded on their own (folder self-nodes and documents); folders, whole pending
// sub-trees; and current, the cursor of the sub-tree being iterated.
type recursiveCursor struct {
	singles   []Dirent
	folders   []*Folder
	current   *recursiveCursor
	size      uint64
	threshold uint64
}

func newRecursiveCursor(root *Folder, threshold uint64) *recursiveCursor {
	c := &recursiveCursor{threshold: threshold, size: root.size}
	c.singles, c.folders = open(root)

	return c
}

// open splits f into its self-node plus documents, and its sub-folders.
func open(f *Folder) ([]Dirent, []*Folder) {
	singles := make([]Dirent, 0, 1+len(f.documents))
	singles = append(singles, f)

	for _, doc := range f.documents {
		singles = append(singles, doc)
	}

	return singles, f.subFolders
}

func (c *recursiveCursor) Next() (Dirent, bool) {
	for {
		if c.current != nil {
			if d, ok := c.current.Next(); ok {
				c.size--

				return d, true
			}

			c.current = nil
		}

		if len(c.singles) > 0 {
			d := c.singles[0]
			c.singles = c.singles[1:]
			c.size--

			return d, true
		}

		if len(c.folders) == 0 {
			return nil, false
		}

		c.current = newRecursiveCursor(c.folders[0], c.threshold)
		c.folders = c.folders[1:]
	}
}

func (c *recursiveCursor) TrySplit() Cursor {
	for c.size > c.threshold {
		switch {
		case len(c.folders) >= 2:
			k := c.splitIndex()
			split := c.handOff(nil, c.folders[k:])
			c.folders = c.folders[:k]

			return split
		case len(c.folders) == 1 && 2*c.folders[0].size > c.size:
			// A dominant sub-tree: split inside it rather than around it.
			singles, folders := open(c.folders[0])
			c.singles = append(append(make([]Dirent, 0, len(c.singles)+len(singles)), c.singles...), singles...)
			c.folders = folders
		case len(c.folders) == 1:
			split := c.handOff(nil, c.folders)
			c.folders = nil

			return split
		case len(c.singles) >= 2:
			h := len(c.singles) / 2
			split := c.handOff(c.singles[h:], nil)
			c.singles = c.singles[:h:h]

			return split
		case c.current != nil:
			split := c.current.TrySplit()
			if split == nil {
				return nil
			}

			c.size -= split.EstimateSize()

			return split
		default:
			return nil
		}
	}

	return nil
}

func (c *recursiveCursor) EstimateSize() uint64 {
	return c.size
}

// splitIndex returns k in [1, len(folders)) such that folders[:k] holds about half
// of the pending sub-tree sizes.
func (c *recursiveCursor) splitIndex() int {
	var total uint64
	for _, f := range c.folders {
		total += f.size
	}

	var prefix uint64

	for i, f := range c.folders[:len(c.folders)-1] {
		prefix += f.size
		if 2*prefix >= total {
			return i + 1
		}
	}

	return len(c.folders) - 1
}

// handOff creates a cursor owning singles and folders and removes their size from c.
// The caller drops them from c.
func (c *recursiveCursor) handOff(singles []Dirent, folders []*Folder) *recursiveCursor {
	split := &recursiveCursor{
		singles:   singles,
		folders:   folders,
		threshold: c.threshold,
		size:      uint64(len(singles)),
	}

	for _, f := range folders {
		split.size += f.size
	}

	c.size -= split.size

	return split
}
