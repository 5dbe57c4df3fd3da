package inventory_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modup/internal/adapters/inventory"
	"go.trai.ch/modup/internal/core/domain"
)

func mkdirs(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, os.MkdirAll(filepath.Join(root, p), domain.DirPerm))
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestInventory_List_SideBySide(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Pester/4.10.1", "Pester/5.5.0", "Pester/5.5.0/en-US", "Pester/notes")

	inv := inventory.New()
	got, err := inv.List(context.Background(), root, "pester")
	require.NoError(t, err)

	assert.Equal(t, []domain.InstalledModule{
		{Name: "Pester", Version: "4.10.1", Location: filepath.Join(root, "Pester", "4.10.1")},
		{Name: "Pester", Version: "5.5.0", Location: filepath.Join(root, "Pester", "5.5.0")},
	}, got)
}

func TestInventory_List_Manifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Legacy", "module.yaml"), "name: Legacy\nversion: 1.2.0\n")
	mkdirs(t, root, "Legacy/1.0.0")

	got, err := inventory.New().List(context.Background(), root, "Legacy")
	require.NoError(t, err)

	assert.Equal(t, []domain.InstalledModule{
		{Name: "Legacy", Version: "1.0.0", Location: filepath.Join(root, "Legacy", "1.0.0")},
		{Name: "Legacy", Version: "1.2.0", Location: filepath.Join(root, "Legacy")},
	}, got)
}

func TestInventory_List_ManifestMissingVersion(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Legacy", "module.yaml"), "name: Legacy\n")

	_, err := inventory.New().List(context.Background(), root, "Legacy")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse module manifest")
}

func TestInventory_List_NotInstalled(t *testing.T) {
	inv := inventory.New()

	got, err := inv.List(context.Background(), t.TempDir(), "Missing")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = inv.List(context.Background(), filepath.Join(t.TempDir(), "absent"), "Missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInventory_List_InvalidName(t *testing.T) {
	_, err := inventory.New().List(context.Background(), t.TempDir(), "../etc")
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid module name")
}

func TestInventory_List_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := inventory.New().List(ctx, t.TempDir(), "Pester")
	require.ErrorIs(t, err, context.Canceled)
}

func TestInventory_Names(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "b-module/1.0.0", "A-Module/2.0.0", "empty", ".modup/installed", "Docs/readme")
	writeFile(t, filepath.Join(root, "Flat", "module.yaml"), "version: 0.1.0\n")

	got, err := inventory.New().Names(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"A-Module", "b-module", "Flat"}, got)
}

func TestInventory_Names_MissingRoot(t *testing.T) {
	got, err := inventory.New().Names(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInventory_Remove(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Pester/4.10.1/bin", "Pester/5.5.0")
	inv := inventory.New()

	old := domain.InstalledModule{Name: "Pester", Version: "4.10.1", Location: filepath.Join(root, "Pester", "4.10.1")}
	require.NoError(t, inv.Remove(context.Background(), old))
	assert.NoDirExists(t, old.Location)
	assert.DirExists(t, filepath.Join(root, "Pester", "5.5.0"))

	last := domain.InstalledModule{Name: "Pester", Version: "5.5.0", Location: filepath.Join(root, "Pester", "5.5.0")}
	require.NoError(t, inv.Remove(context.Background(), last))
	assert.NoDirExists(t, filepath.Join(root, "Pester"), "empty module directory is removed")
}

func TestInventory_Remove_FlatKeepsRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Legacy", "module.yaml"), "version: 1.0.0\n")

	flat := domain.InstalledModule{Name: "Legacy", Version: "1.0.0", Location: filepath.Join(root, "Legacy")}
	require.NoError(t, inventory.New().Remove(context.Background(), flat))

	assert.NoDirExists(t, flat.Location)
	assert.DirExists(t, root)
}
