package cli_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igorbrzezek/genfiles/internal/cli"
)

// run executes the root command with args, discarding cobra's own
// output. Tests share the global logger, so they stay sequential.
func run(args ...string) error {
	cmd := cli.New("test")
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	return cmd.Execute()
}

func TestCommandFlatMode(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, run("-d", dir, "--file-create", "3,1"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	info, err := os.Stat(filepath.Join(dir, "fixed_file_001.bin"))
	require.NoError(t, err)
	assert.Equal(t, int64(1024), info.Size())
}

func TestCommandStructuredMode(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, run("-d", dir, "-n", "2", "-m", "3", "-k", "1", "--seed", "5"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for i, entry := range entries {
		assert.True(t, entry.IsDir())
		assert.Equal(t, fmt.Sprintf("subdir_%03d", i+1), entry.Name())
	}
}

func TestCommandRequiresDirectory(t *testing.T) {
	err := run("-n", "1", "-m", "1", "-k", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "root directory is required")
}

func TestCommandRequiresStructuredFlags(t *testing.T) {
	err := run("-d", filepath.Join(t.TempDir(), "out"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "-n, -m, and -k are required")
}

func TestCommandRejectsPartialFileCreate(t *testing.T) {
	err := run("-d", filepath.Join(t.TempDir(), "out"), "--file-create", "5")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly two values")
}

func TestCommandRejectsNonPositiveFileCreate(t *testing.T) {
	err := run("-d", filepath.Join(t.TempDir(), "out"), "--file-create", "0,10")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than 0")
}

func TestCommandRejectsUnknownOutput(t *testing.T) {
	err := run("-d", filepath.Join(t.TempDir(), "out"), "--file-create", "1,1", "--output", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestCommandRejectsConflictingTypeFlags(t *testing.T) {
	err := run("-d", filepath.Join(t.TempDir(), "out"), "-n", "1", "-m", "1", "-k", "1", "--bin", "--txt")

	require.Error(t, err)
}

func TestCommandRejectsBadMinSize(t *testing.T) {
	err := run("-d", filepath.Join(t.TempDir(), "out"),
		"-n", "1", "-m", "1", "-k", "1", "--min-size", "lots")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid min-size")
}

func TestCommandProfileRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	prof := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(prof, []byte(fmt.Sprintf(
		"name: test\ndirectory: %s\nstructured:\n  dirs: 2\n  max_files: 2\n  max_size_kb: 1\nseed: 7\n",
		dir)), 0o644))

	require.NoError(t, run("--profile", prof))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCommandFlagsOverrideProfile(t *testing.T) {
	profileDir := filepath.Join(t.TempDir(), "from-profile")
	flagDir := filepath.Join(t.TempDir(), "from-flag")

	prof := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(prof, []byte(fmt.Sprintf(
		"name: test\ndirectory: %s\nstructured:\n  dirs: 3\n  max_files: 2\n  max_size_kb: 1\nseed: 7\n",
		profileDir)), 0o644))

	require.NoError(t, run("--profile", prof, "-d", flagDir, "-n", "1"))

	_, err := os.Stat(profileDir)
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(flagDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCommandInitProfile(t *testing.T) {
	require.NoError(t, run("--init-profile"))
}

func TestCommandVersion(t *testing.T) {
	cmd := cli.New("1.2.3")

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "1.2.3")
}

func TestInspectCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, run("-d", dir, "--file-create", "2,1"))

	require.NoError(t, run("inspect", dir))
}

func TestInspectCommandMissingPath(t *testing.T) {
	err := run("inspect", filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accessing path")
}

func TestInspectCommandRejectsUnknownOutput(t *testing.T) {
	err := run("inspect", t.TempDir(), "--output", "yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
