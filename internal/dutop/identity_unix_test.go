//go:build unix

package dutop

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityOfHardLinksShareKey(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "original")
	linked := filepath.Join(dir, "linked")

	require.NoError(t, os.WriteFile(original, []byte("payload"), 0o644))
	require.NoError(t, os.Link(original, linked))

	origInfo, err := os.Stat(original)
	require.NoError(t, err)
	linkInfo, err := os.Stat(linked)
	require.NoError(t, err)

	origKey, ok := identityOf(original, origInfo)
	require.True(t, ok)
	linkKey, ok := identityOf(linked, linkInfo)
	require.True(t, ok)

	assert.Equal(t, origKey, linkKey)
}

func TestIdentityOfDistinctFilesDiffer(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")

	require.NoError(t, os.WriteFile(first, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("b"), 0o644))

	firstInfo, err := os.Stat(first)
	require.NoError(t, err)
	secondInfo, err := os.Stat(second)
	require.NoError(t, err)

	firstKey, ok := identityOf(first, firstInfo)
	require.True(t, ok)
	secondKey, ok := identityOf(second, secondInfo)
	require.True(t, ok)

	assert.NotEqual(t, firstKey, secondKey)
}

func TestAllocatedSizeIsBlockBased(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")

	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 100), 0o644))

	info, err := os.Stat(path)
	require.NoError(t, err)

	size := allocatedSize(info)
	assert.Positive(t, size)
	assert.Zero(t, size%512, "allocated size must be a multiple of the 512-byte block unit")
}
