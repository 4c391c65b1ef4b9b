package folder

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/dirtree/internal/listing"
)

// Build creates a snapshot of the directory tree rooted at root.
//
// With parallel set, the children of every directory are classified and built in
// concurrent tasks, and recursion into sub-directories happens inside those tasks.
// Otherwise children are processed in listing order on the calling goroutine, and
// the snapshot preserves that order.
//
// If any directory of the tree cannot be listed, Build returns a *BuildError
// (matching ErrIOFailure) and no folder. Cancelling ctx aborts pending listings.
func Build(ctx context.Context, lister listing.Lister, root string, parallel bool, opts ...Option) (*Folder, error) {
	b := builder{
		lister:   lister,
		parallel: parallel,
		opts:     newOptions(opts),
	}

	return b.build(ctx, filepath.Clean(root))
}

type builder struct {
	lister   listing.Lister
	parallel bool
	opts     options
}

func (b *builder) build(ctx context.Context, path string) (*Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	children, err := b.lister.List(ctx, path)
	if err != nil {
		return nil, &BuildError{Path: path, Err: err}
	}

	if b.opts.onList != nil {
		b.opts.onList(path, len(children))
	}

	// A lister may report the directory itself; descending into it would never end.
	children = slices.DeleteFunc(children, func(c listing.Child) bool {
		return filepath.Clean(c.Path) == path
	})

	var partials []*Folder

	if b.parallel {
		partials, err = b.buildConcurrently(ctx, path, children)
	} else {
		partials, err = b.buildInOrder(ctx, path, children)
	}

	if err != nil {
		return nil, err
	}

	folder := newFolder(path)
	for _, partial := range partials {
		folder.merge(partial)
	}

	mustHoldInvariant(folder)

	return folder, nil
}

func (b *builder) buildInOrder(ctx context.Context, path string, children []listing.Child) ([]*Folder, error) {
	partials := make([]*Folder, 0, len(children))

	for _, child := range children {
		partial, err := b.entry(ctx, path, child)
		if err != nil {
			return nil, err
		}

		partials = append(partials, partial)
	}

	return partials, nil
}

// buildConcurrently runs one task per child. Each task owns its partial folder until
// Wait returns; the first failing task cancels the others.
func (b *builder) buildConcurrently(ctx context.Context, path string, children []listing.Child) ([]*Folder, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.workers)

	partials := make([]*Folder, len(children))

	for i, child := range children {
		g.Go(func() error {
			partial, err := b.entry(gctx, path, child)
			if err != nil {
				return err
			}

			partials[i] = partial

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return partials, nil
}

// entry builds the partial folder holding the single child of path.
func (b *builder) entry(ctx context.Context, path string, child listing.Child) (*Folder, error) {
	partial := newFolder(path)

	if child.IsDir {
		sub, err := b.build(ctx, filepath.Clean(child.Path))
		if err != nil {
			return nil, err
		}

		partial.subFolders = append(partial.subFolders, sub)
	} else {
		partial.documents = append(partial.documents, NewDocument(child.Path))
	}

	partial.computeSize()

	return partial, nil
}

// mustHoldInvariant panics if the size of f disagrees with its direct children.
// Only a bug in merge can trigger it.
func mustHoldInvariant(f *Folder) {
	if want := f.expectedSize(); f.size != want {
		panic(fmt.Errorf("%w: folder %q has size %d, children add up to %d",
			ErrInvariantViolation, f.path, f.size, want))
	}
}
