package folder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafFolder(path string, docs ...string) *Folder {
	f := newFolder(path)
	for _, d := range docs {
		f.documents = append(f.documents, NewDocument(d))
	}

	f.computeSize()

	return f
}

func partial(path string, sub *Folder, docs ...string) *Folder {
	f := leafFolder(path, docs...)
	if sub != nil {
		f.subFolders = append(f.subFolders, sub)
	}

	f.computeSize()

	return f
}

func TestMerge_Associative(t *testing.T) {
	newPartials := func() (*Folder, *Folder, *Folder) {
		return partial("/p", leafFolder("/p/x", "/p/x/1", "/p/x/2")),
			partial("/p", nil, "/p/a"),
			partial("/p", leafFolder("/p/y"), "/p/b")
	}

	a, b, c := newPartials()
	left := newFolder("/p").merge(a).merge(b).merge(c)

	a, b, c = newPartials()
	right := newFolder("/p").merge(a).merge(b.merge(c))

	assert.Equal(t, left.Size(), right.Size())
	assert.Equal(t, uint64(1+3+1+2), left.Size())
	assert.Equal(t, paths(left.Children()), paths(right.Children()))
	require.NoError(t, left.Validate())
	require.NoError(t, right.Validate())
}

func TestFolder_ChildrenOrder(t *testing.T) {
	f := partial("/p", leafFolder("/p/sub"), "/p/doc")

	children := f.Children()
	require.Len(t, children, 2)
	assert.True(t, children[0].IsFolder())
	assert.False(t, children[1].IsFolder())
	assert.Empty(t, children[1].Children())
}

func TestFolder_ValidateDetectsBrokenSize(t *testing.T) {
	sub := leafFolder("/p/sub", "/p/sub/a")
	f := partial("/p", sub)

	sub.size = 7

	err := f.Validate()
	require.ErrorIs(t, err, ErrInvariantViolation)
	assert.Contains(t, err.Error(), "/p")
}

func TestMustHoldInvariant_Panics(t *testing.T) {
	f := leafFolder("/p", "/p/a")
	f.size = 1

	assert.Panics(t, func() { mustHoldInvariant(f) })
}

func TestDocument(t *testing.T) {
	d := NewDocument("/p/file.go")

	assert.Equal(t, "file.go", d.Name())
	assert.Equal(t, uint64(1), d.Size())
	assert.False(t, d.IsFolder())
	assert.Nil(t, d.Children())
}

func TestStrategy_Parse(t *testing.T) {
	s, err := ParseStrategy("Batch")
	require.NoError(t, err)
	assert.Equal(t, Batch, s)

	require.NoError(t, s.UnmarshalText([]byte("recursive")))
	assert.Equal(t, Recursive, s)

	_, err = ParseStrategy("sideways")
	require.Error(t, err)

	text, err := Batch.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "batch", string(text))
}
