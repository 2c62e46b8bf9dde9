package common

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "record.json")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o600))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWriteFileExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")

	require.NoError(t, WriteFileExclusive(path, []byte("first"), 0o600))
	err := WriteFileExclusive(path, []byte("second"), 0o600)
	assert.ErrorIs(t, err, fs.ErrExist)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestBOM(t *testing.T) {
	data := WithBOM([]byte(`{}`))
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF, '{', '}'}, data)
	assert.Equal(t, []byte(`{}`), TrimBOM(data))
	assert.Equal(t, []byte(`{}`), TrimBOM([]byte(`{}`)))
}
