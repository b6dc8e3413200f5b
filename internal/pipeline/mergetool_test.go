package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMergeBinary writes an executable shell script standing in for
// pyftmerge and returns its path.
func stubMergeBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "pyftmerge-stub")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755))
	return path
}

func writeSubset(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestToolMerger_Success(t *testing.T) {
	dir := t.TempDir()
	a := writeSubset(t, dir, "a.subset.ttf", "AAA")
	b := writeSubset(t, dir, "b.subset.ttf", "BBB")

	merger := &ToolMerger{
		Binary:  stubMergeBinary(t, `cat "$@" > merged.ttf`),
		Timeout: 10 * time.Second,
	}
	outPath := filepath.Join(dir, "out.ttf")
	require.NoError(t, merger.Merge(context.Background(), []string{a, b}, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	// Inputs are staged in order, so the concatenation is deterministic.
	assert.Equal(t, "AAABBB", string(data))
}

func TestToolMerger_FailureSurfacesToolOutput(t *testing.T) {
	dir := t.TempDir()
	a := writeSubset(t, dir, "a.subset.ttf", "AAA")

	merger := &ToolMerger{
		Binary:  stubMergeBinary(t, `echo "Merging failed: cmap conflict" >&2; exit 1`),
		Timeout: 10 * time.Second,
	}
	err := merger.Merge(context.Background(), []string{a}, filepath.Join(dir, "out.ttf"))

	var mergeErr *MergeError
	require.ErrorAs(t, err, &mergeErr)
	assert.Contains(t, mergeErr.Output, "cmap conflict")
}

func TestToolMerger_NoOutputFileIsFailure(t *testing.T) {
	dir := t.TempDir()
	a := writeSubset(t, dir, "a.subset.ttf", "AAA")

	// Exit 0 but never produce a merged file.
	merger := &ToolMerger{
		Binary:  stubMergeBinary(t, `true`),
		Timeout: 10 * time.Second,
	}
	err := merger.Merge(context.Background(), []string{a}, filepath.Join(dir, "out.ttf"))

	var mergeErr *MergeError
	require.ErrorAs(t, err, &mergeErr)
}

func TestToolMerger_AlternateOutputName(t *testing.T) {
	dir := t.TempDir()
	a := writeSubset(t, dir, "a.subset.ttf", "AAA")

	// Some fontTools versions write Merged.ttf instead of merged.ttf.
	merger := &ToolMerger{
		Binary:  stubMergeBinary(t, `cat "$@" > Merged.ttf`),
		Timeout: 10 * time.Second,
	}
	outPath := filepath.Join(dir, "out.ttf")
	require.NoError(t, merger.Merge(context.Background(), []string{a}, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "AAA", string(data))
}

func TestToolMerger_MissingBinary(t *testing.T) {
	merger := &ToolMerger{Binary: "fontmerge-no-such-binary", Timeout: time.Second}
	err := merger.Merge(context.Background(), []string{"a.ttf"}, "out.ttf")

	var mergeErr *MergeError
	require.ErrorAs(t, err, &mergeErr)
	assert.Contains(t, mergeErr.Error(), "not found in PATH")
}

func TestToolMerger_Timeout(t *testing.T) {
	dir := t.TempDir()
	a := writeSubset(t, dir, "a.subset.ttf", "AAA")

	merger := &ToolMerger{
		Binary:  stubMergeBinary(t, `sleep 5`),
		Timeout: 100 * time.Millisecond,
	}
	err := merger.Merge(context.Background(), []string{a}, filepath.Join(dir, "out.ttf"))

	var mergeErr *MergeError
	require.ErrorAs(t, err, &mergeErr)
	assert.Contains(t, mergeErr.Error(), "timed out")
}

func TestNewToolMerger_Defaults(t *testing.T) {
	t.Setenv(mergeBinaryEnv, "")
	merger := NewToolMerger(0)
	assert.Equal(t, defaultMergeBinary, merger.Binary)
	assert.Equal(t, DefaultMergeTimeout, merger.Timeout)

	t.Setenv(mergeBinaryEnv, "/opt/fonttools/bin/pyftmerge")
	merger = NewToolMerger(time.Minute)
	assert.Equal(t, "/opt/fonttools/bin/pyftmerge", merger.Binary)
	assert.Equal(t, time.Minute, merger.Timeout)
}
