package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylo/internal/adapters/fs"
)

func TestHasher_Hash(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "_base.scss")
	require.NoError(t, os.WriteFile(path, []byte("$c: red;"), 0o600))

	h := fs.NewHasher()

	got, err := h.Hash(path)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64String("$c: red;"), got)

	require.NoError(t, os.WriteFile(path, []byte("$c: blue;"), 0o600))
	changed, err := h.Hash(path)
	require.NoError(t, err)
	assert.NotEqual(t, got, changed)
}

func TestHasher_Hash_Missing(t *testing.T) {
	_, err := fs.NewHasher().Hash(filepath.Join(t.TempDir(), "missing.scss"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
