package index_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modup/internal/adapters/index"
	"go.trai.ch/modup/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := index.NewStore()

	rec := domain.InstallRecord{
		Name:        "Pester",
		Version:     "5.5.0",
		Location:    filepath.Join(root, "Pester", "5.5.0"),
		Repository:  "PSGallery",
		InstalledAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Put(root, rec))

	got, err := store.Get(root, "Pester")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()
		got, err := store.Get(root, "pester")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "5.5.0", got.Version)
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		got, err := store.Get(root, "Missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStore_PutReplaces(t *testing.T) {
	root := t.TempDir()
	store := index.NewStore()

	require.NoError(t, store.Put(root, domain.InstallRecord{Name: "Az", Version: "1.0.0"}))
	require.NoError(t, store.Put(root, domain.InstallRecord{Name: "Az", Version: "2.0.0"}))

	got, err := store.Get(root, "Az")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", got.Version)

	entries, err := os.ReadDir(domain.IndexPath(root))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_Delete(t *testing.T) {
	root := t.TempDir()
	store := index.NewStore()

	require.NoError(t, store.Put(root, domain.InstallRecord{Name: "Az", Version: "1.0.0"}))
	require.NoError(t, store.Delete(root, "AZ"))

	got, err := store.Get(root, "Az")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Delete(root, "Az"), "deleting a missing record is not an error")
}

func TestStore_GetCorrupt(t *testing.T) {
	root := t.TempDir()
	store := index.NewStore()
	require.NoError(t, store.Put(root, domain.InstallRecord{Name: "Az", Version: "1.0.0"}))

	entries, err := os.ReadDir(domain.IndexPath(root))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	path := filepath.Join(domain.IndexPath(root), entries[0].Name())
	require.NoError(t, os.WriteFile(path, []byte("name: [broken"), domain.FilePerm))

	_, err = store.Get(root, "Az")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to unmarshal install record")
}
