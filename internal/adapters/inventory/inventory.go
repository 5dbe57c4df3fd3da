// Package inventory enumerates the modules installed under a module path.
package inventory

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// scanLimit bounds the number of module directories read concurrently by Names.
const scanLimit = 8

// manifest is the metadata file of a module copied without a version directory.
type manifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Inventory implements ports.ModuleInventory on the local filesystem.
type Inventory struct{}

// New creates a new Inventory.
func New() *Inventory {
	return &Inventory{}
}

// List returns every installed version of name under root, sorted by version.
// Versions live in {root}/{Name}/{Version}. A module.yaml in {root}/{Name} adds
// a flat install located at {root}/{Name} itself.
func (i *Inventory) List(ctx context.Context, root, name string) ([]domain.InstalledModule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirName, err := findModuleDir(root, name)
	if err != nil || dirName == "" {
		return nil, err
	}

	return listVersions(filepath.Join(root, dirName), dirName)
}

// Names returns the names of all modules with at least one installed version, sorted.
func (i *Inventory) Names(ctx context.Context, root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInventoryReadFailed.Error()), "path", root)
	}

	candidates := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			candidates = append(candidates, e.Name())
		}
	}

	installed := make([]bool, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scanLimit)

	for idx, dirName := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			versions, err := listVersions(filepath.Join(root, dirName), dirName)
			if err != nil {
				return err
			}
			installed[idx] = len(versions) > 0
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(candidates))
	for idx, dirName := range candidates {
		if installed[idx] {
			names = append(names, dirName)
		}
	}
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return names, nil
}

// Remove deletes the directory of one module version.
// For a version directory the module directory is removed as well once it is empty.
func (i *Inventory) Remove(ctx context.Context, module domain.InstalledModule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.RemoveAll(module.Location); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrRemoveFailed.Error()), "module", module.Name)
		return zerr.With(err, "path", module.Location)
	}

	if filepath.Base(module.Location) != module.Version {
		return nil
	}
	parent := filepath.Dir(module.Location)
	if entries, err := os.ReadDir(parent); err == nil && len(entries) == 0 {
		_ = os.Remove(parent)
	}

	return nil
}

// findModuleDir returns the directory name under root matching name case-insensitively.
// An exact match wins over a case-folded one.
func findModuleDir(root, name string) (string, error) {
	if err := domain.ValidateModuleName(name); err != nil {
		return "", zerr.With(err, "module", name)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrInventoryReadFailed.Error()), "path", root)
	}

	var folded string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if e.Name() == name {
			return name, nil
		}
		if folded == "" && strings.EqualFold(e.Name(), name) {
			folded = e.Name()
		}
	}
	return folded, nil
}

func listVersions(moduleDir, dirName string) ([]domain.InstalledModule, error) {
	m, err := readManifest(moduleDir)
	if err != nil {
		return nil, err
	}

	var modules []domain.InstalledModule
	if m != nil {
		name := m.Name
		if name == "" {
			name = dirName
		}
		modules = append(modules, domain.InstalledModule{Name: name, Version: m.Version, Location: moduleDir})
	}

	entries, err := os.ReadDir(moduleDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInventoryReadFailed.Error()), "path", moduleDir)
	}

	for _, e := range entries {
		if !e.IsDir() || !domain.IsVersion(e.Name()) {
			continue
		}
		modules = append(modules, domain.InstalledModule{
			Name:     dirName,
			Version:  e.Name(),
			Location: filepath.Join(moduleDir, e.Name()),
		})
	}

	slices.SortStableFunc(modules, func(a, b domain.InstalledModule) int {
		return domain.CompareVersions(a.Version, b.Version)
	})
	return modules, nil
}

func readManifest(moduleDir string) (*manifest, error) {
	path := filepath.Join(moduleDir, domain.ManifestFileName)
	//nolint:gosec // Path is constructed from the module root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInventoryReadFailed.Error()), "path", path)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}
	if m.Version == "" {
		return nil, zerr.With(zerr.With(domain.ErrManifestParseFailed, "path", path), "missing", "version")
	}
	return &m, nil
}
