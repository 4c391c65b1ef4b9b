package folder

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirtree/internal/listing"
)

// scenarioTree is root{a.txt, b.txt, sub{c.txt}}.
func scenarioTree() *listing.Memory {
	mem := listing.NewMemory("/root")
	mem.AddFile("a.txt")
	mem.AddFile("b.txt")
	mem.AddFile("sub/c.txt")

	return mem
}

// wideTree has several levels of folders with a varying number of documents.
func wideTree() *listing.Memory {
	mem := listing.NewMemory("/wide")

	for i := range 4 {
		for j := range 3 {
			for k := range i + j {
				mem.AddFile(fmt.Sprintf("d%d/e%d/f%d.txt", i, j, k))
			}
		}

		mem.AddFile(fmt.Sprintf("d%d/top.txt", i))
	}

	mem.AddDir("empty")
	mem.AddFile("root.txt")

	return mem
}

// skewedTree hides almost everything in one deep chain of folders.
func skewedTree() *listing.Memory {
	mem := listing.NewMemory("/skewed")
	mem.AddFile("lonely.txt")

	dir := "deep"
	for i := range 6 {
		for k := range 10 {
			mem.AddFile(fmt.Sprintf("%s/f%d.txt", dir, k))
		}

		dir = fmt.Sprintf("%s/l%d", dir, i)
	}

	return mem
}

func mustBuild(t *testing.T, mem *listing.Memory, parallel bool) *Folder {
	t.Helper()

	root, err := Build(context.Background(), mem, mem.Root(), parallel)
	require.NoError(t, err)
	require.NotNil(t, root)

	return root
}

// paths returns the sorted paths of the entities, duplicates kept.
func paths(entities []Dirent) []string {
	out := make([]string, 0, len(entities))
	for _, d := range entities {
		out = append(out, d.Path())
	}

	slices.Sort(out)

	return out
}

func drain(c Cursor) []Dirent {
	var out []Dirent

	for {
		d, ok := c.Next()
		if !ok {
			return out
		}

		out = append(out, d)
	}
}

// splitAll splits c and every cursor split from it until none splits any further.
func splitAll(c Cursor) []Cursor {
	all := []Cursor{c}

	for i := 0; i < len(all); i++ {
		for {
			split := all[i].TrySplit()
			if split == nil {
				break
			}

			all = append(all, split)
		}
	}

	return all
}
