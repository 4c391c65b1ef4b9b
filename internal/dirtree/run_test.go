package dirtree

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirtree/internal/folder"
	"github.com/idelchi/dirtree/internal/listing"
)

func memoryTree() *listing.Memory {
	mem := listing.NewMemory("/proj")
	mem.AddFile("go.mod")
	mem.AddFile("README.md")
	mem.AddFile("cmd/tool/main.go")
	mem.AddFile("internal/a/a.go")
	mem.AddFile("internal/a/a_test.go")
	mem.AddFile("internal/b/b.go")
	mem.AddFile("docs/guide.md")

	return mem
}

func TestRun_AllModesAgree(t *testing.T) {
	for _, parallelBuild := range []bool{false, true} {
		for _, parallel := range []bool{false, true} {
			for _, strategy := range []folder.Strategy{folder.Recursive, folder.Batch} {
				stats, err := run(context.Background(), memoryTree(), Options{
					Path:          "/proj",
					ParallelBuild: parallelBuild,
					Parallel:      parallel,
					Strategy:      strategy,
					Threshold:     1,
					Workers:       3,
					TopN:          3,
					Matches:       []string{"**/*.go"},
				}, nil)
				require.NoError(t, err)

				// root, cmd, cmd/tool, internal, internal/a, internal/b, docs
				assert.Equal(t, int64(7), stats.FolderCount)
				assert.Equal(t, int64(7), stats.DocumentCount)
				assert.Equal(t, uint64(14), stats.Size)
				assert.Equal(t, stats.Size, stats.Visited)
				assert.Equal(t, int64(7), stats.Listings)
				assert.Equal(t, int64(4), stats.MatchCount)
				assert.Equal(t, ExtStat{Count: 4}, stats.ExtStats[".go"])
				assert.Equal(t, ExtStat{Count: 2}, stats.ExtStats[".md"])
				assert.Equal(t, ExtStat{Count: 1}, stats.ExtStats[".mod"])

				require.Len(t, stats.TopFolders, 3)
				assert.Equal(t, FolderStat{Path: "internal", Size: 6}, stats.TopFolders[2])
				assert.Equal(t, FolderStat{Path: "cmd", Size: 3}, stats.TopFolders[1])
				assert.Equal(t, FolderStat{Path: "internal/a", Size: 3}, stats.TopFolders[0])

				if parallel {
					assert.GreaterOrEqual(t, stats.Cursors, 1)
				} else {
					assert.Equal(t, 1, stats.Cursors)
				}
			}
		}
	}
}

func TestRun_BuildFailure(t *testing.T) {
	mem := memoryTree()
	mem.Deny("internal/b")

	stats, err := run(context.Background(), mem, Options{Path: "/proj", ParallelBuild: true}, nil)
	require.ErrorIs(t, err, folder.ErrIOFailure)
	assert.Nil(t, stats)
}

func TestRun_InvalidPattern(t *testing.T) {
	_, err := run(context.Background(), memoryTree(), Options{Path: "/proj", Matches: []string{"[oops"}}, nil)
	require.Error(t, err)
}

func TestRun_Verify(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "file1.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a", "b", "file2.txt"), []byte("world"), 0o644))

	stats, err := Run(context.Background(), Options{
		Path:          tmpDir,
		ParallelBuild: true,
		Parallel:      true,
		Strategy:      folder.Batch,
		Verify:        true,
	}, nil)
	require.NoError(t, err)
	assert.True(t, stats.Verified)
	assert.Equal(t, uint64(5), stats.Size)
}

func TestRun_MissingPath(t *testing.T) {
	_, err := Run(context.Background(), Options{Path: filepath.Join(t.TempDir(), "missing")}, nil)
	require.ErrorIs(t, err, folder.ErrIOFailure)
}
