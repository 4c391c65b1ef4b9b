package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirtree/internal/dirtree"
	"github.com/idelchi/dirtree/internal/folder"
)

func writeTree(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "b.go"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "sub", "c.go"), []byte("c"), 0o644))

	return tmpDir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := New("v1.2.3").Command()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestCommand_Version(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3\n", out)
}

func TestCommand_JSON(t *testing.T) {
	root := writeTree(t)

	out, err := execute(t, "-o", "json", "--parallel-build", "--parallel", "--strategy", "batch",
		"--threshold", "1", "--verify", "--match", "**/*.go", root)
	require.NoError(t, err)

	var stats dirtree.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, uint64(5), stats.Size)
	assert.Equal(t, int64(2), stats.MatchCount)
	assert.Equal(t, folder.Batch, stats.Strategy)
	assert.True(t, stats.Verified)
}

func TestCommand_Table(t *testing.T) {
	out, err := execute(t, writeTree(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Largest sub-trees:")
	assert.Contains(t, out, "'sub'")
	assert.Contains(t, out, "recursive strategy")
}

func TestCommand_ConfigDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: json\nstrategy: batch\n"), 0o644))

	var out bytes.Buffer

	cmd := New("dev").Command()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, writeTree(t)})
	require.NoError(t, cmd.Execute())

	var stats dirtree.Stats
	require.NoError(t, json.Unmarshal(out.Bytes(), &stats))
	assert.Equal(t, folder.Batch, stats.Strategy)
}

func TestCommand_InvalidFlags(t *testing.T) {
	root := writeTree(t)

	_, err := execute(t, "-o", "xml", root)
	require.Error(t, err)

	_, err = execute(t, "--strategy", "sideways", root)
	require.Error(t, err)

	_, err = execute(t, "--workers", "-1", root)
	require.Error(t, err)

	_, err = execute(t, root, "extra")
	require.Error(t, err)
}

func TestCommand_MissingPath(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, folder.ErrIOFailure)
}
