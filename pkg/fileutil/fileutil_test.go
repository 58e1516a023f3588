package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "SKILL.md")

	require.NoError(t, AtomicWriteFile(path, []byte("first"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	// Overwrite replaces content and leaves no temp files behind.
	require.NoError(t, AtomicWriteFile(path, []byte("second"), 0o644))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReadFileWithLimit(t *testing.T) {
	dir := t.TempDir()

	small := filepath.Join(dir, "small.md")
	require.NoError(t, os.WriteFile(small, []byte("ok"), 0o644))

	data, err := ReadFileWithLimit(small)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))

	big := filepath.Join(dir, "big.md")
	require.NoError(t, os.WriteFile(big, make([]byte, MaxFileSize+1), 0o644))

	_, err = ReadFileWithLimit(big)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestCopyDir(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "references"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "SKILL.md"), []byte("skill"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "references", "guide.md"), []byte("guide"), 0o644))

	dst := filepath.Join(t.TempDir(), "copied")
	require.NoError(t, CopyDir(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "SKILL.md"))
	require.NoError(t, err)
	assert.Equal(t, "skill", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "references", "guide.md"))
	require.NoError(t, err)
	assert.Equal(t, "guide", string(data))
}
