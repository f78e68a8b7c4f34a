package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gramseva/internal/shared/config"
)

func newTestStore(t *testing.T, maxSize int64) *LocalStore {
	t.Helper()

	store, err := NewLocalStore(&config.UploadConfig{
		Dir:               t.TempDir(),
		MaxSizeBytes:      maxSize,
		AllowedExtensions: []string{"txt", "pdf", "docx", "doc"},
	})
	require.NoError(t, err)
	return store
}

func TestLocalStore_Allowed(t *testing.T) {
	store := newTestStore(t, 1024)

	assert.True(t, store.Allowed("report.pdf"))
	assert.True(t, store.Allowed("REPORT.PDF"))
	assert.True(t, store.Allowed("notes.txt"))

	assert.False(t, store.Allowed("malware.exe"))
	assert.False(t, store.Allowed("archive.tar.gz"))
	assert.False(t, store.Allowed("noextension"))
}

func TestLocalStore_Save(t *testing.T) {
	t.Run("stores with a unique sanitized name", func(t *testing.T) {
		store := newTestStore(t, 1024)

		first, err := store.Save("my report.pdf", strings.NewReader("one"))
		require.NoError(t, err)
		second, err := store.Save("my report.pdf", strings.NewReader("two"))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, strings.HasSuffix(first, "my_report.pdf"))
		assert.NotContains(t, first, " ")
	})

	t.Run("rejects a disallowed extension", func(t *testing.T) {
		store := newTestStore(t, 1024)

		_, err := store.Save("evil.exe", strings.NewReader("x"))
		assert.Error(t, err)
	})

	t.Run("rejects an oversized file and leaves nothing behind", func(t *testing.T) {
		store := newTestStore(t, 8)

		_, err := store.Save("big.txt", strings.NewReader("this is more than eight bytes"))
		require.Error(t, err)

		entries, err := os.ReadDir(store.dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("strips path traversal from the original name", func(t *testing.T) {
		store := newTestStore(t, 1024)

		stored, err := store.Save("../../etc/passwd.txt", strings.NewReader("x"))
		require.NoError(t, err)

		assert.NotContains(t, stored, "..")
		assert.NotContains(t, stored, "/")

		_, err = os.Stat(filepath.Join(store.dir, stored))
		assert.NoError(t, err)
	})
}

func TestLocalStore_Remove(t *testing.T) {
	store := newTestStore(t, 1024)

	stored, err := store.Save("note.txt", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(stored))
	_, err = os.Stat(filepath.Join(store.dir, stored))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Remove("never-existed.txt"), "missing files are not an error")
}
