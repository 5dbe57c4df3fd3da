// Package installer implements the Installer port by extracting downloaded module packages.
package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/modup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer implements ports.Installer.
type Installer struct {
	registry  ports.Registry
	index     ports.InstallIndex
	inventory ports.ModuleInventory
	logger    ports.Logger
	now       func() time.Time
}

// New creates a new Installer.
func New(
	registry ports.Registry,
	index ports.InstallIndex,
	inventory ports.ModuleInventory,
	logger ports.Logger,
) *Installer {
	return &Installer{
		registry:  registry,
		index:     index,
		inventory: inventory,
		logger:    logger,
		now:       time.Now,
	}
}

// Install places module under root and records it in the install index.
func (i *Installer) Install(
	ctx context.Context,
	root string,
	module domain.RemoteModule,
) (*domain.InstallRecord, error) {
	rec, err := i.place(ctx, root, module)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "module", module.Name)
		return nil, zerr.With(err, "version", module.Version)
	}
	return rec, nil
}

// Update installs module as the new version of a module previously installed from a repository.
// Older versions stay on disk.
func (i *Installer) Update(
	ctx context.Context,
	root string,
	module domain.RemoteModule,
) (*domain.InstallRecord, error) {
	existing, err := i.index.Get(root, module.Name)
	if err == nil && existing == nil {
		err = domain.ErrNotInstalledFromRegistry
	}

	var rec *domain.InstallRecord
	if err == nil {
		rec, err = i.place(ctx, root, module)
	}
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrUpdateFailed.Error()), "module", module.Name)
		return nil, zerr.With(err, "version", module.Version)
	}
	return rec, nil
}

// Uninstall removes one version of name, or every version when version is empty.
// The install record is dropped once the recorded version is gone.
func (i *Installer) Uninstall(ctx context.Context, root, name, version string) error {
	err := i.uninstall(ctx, root, name, version)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrUninstallFailed.Error()), "module", name)
	}
	return nil
}

func (i *Installer) uninstall(ctx context.Context, root, name, version string) error {
	installed, err := i.inventory.List(ctx, root, name)
	if err != nil {
		return err
	}

	// Flat installs hold the version directories inside them, so they go last.
	var targets, flat []domain.InstalledModule
	for _, m := range installed {
		if version != "" && !domain.VersionsEqual(m.Version, version) {
			continue
		}
		if filepath.Base(m.Location) == m.Version {
			targets = append(targets, m)
		} else {
			flat = append(flat, m)
		}
	}
	if len(flat) > 0 && len(targets)+len(flat) < len(installed) {
		return zerr.With(zerr.With(domain.ErrUnsafeRemoval, "module", name), "path", flat[0].Location)
	}
	targets = append(targets, flat...)
	if len(targets) == 0 {
		err := zerr.With(domain.ErrModuleNotInstalled, "module", name)
		if version != "" {
			err = zerr.With(err, "version", version)
		}
		return err
	}

	rec, err := i.index.Get(root, name)
	if err != nil {
		return err
	}

	for _, m := range targets {
		if err := i.inventory.Remove(ctx, m); err != nil {
			return err
		}
		i.logger.Info(fmt.Sprintf("Removed %s version %s", m.Name, m.Version))

		if rec != nil && domain.VersionsEqual(rec.Version, m.Version) {
			if err := i.index.Delete(root, name); err != nil {
				return err
			}
			rec = nil
		}
	}

	return nil
}

// place downloads and extracts module into {root}/{Name}/{Version} and writes its install record.
func (i *Installer) place(
	ctx context.Context,
	root string,
	module domain.RemoteModule,
) (*domain.InstallRecord, error) {
	if err := domain.ValidateModuleName(module.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateVersion(module.Version); err != nil {
		return nil, err
	}

	moduleDir, err := i.moduleDir(ctx, root, module.Name)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(moduleDir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}

	pkgPath, err := i.download(ctx, moduleDir, module)
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.Remove(pkgPath) }()

	staging, err := os.MkdirTemp(moduleDir, ".staging-*")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	defer func() { _ = os.RemoveAll(staging) }()

	if err := extract(ctx, pkgPath, staging); err != nil {
		return nil, err
	}

	target := filepath.Join(moduleDir, module.Version)
	if err := os.RemoveAll(target); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "path", target)
	}
	if err := os.Rename(staging, target); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "path", target)
	}

	rec := domain.InstallRecord{
		Name:        filepath.Base(moduleDir),
		Version:     module.Version,
		Location:    target,
		Repository:  module.Repository.Name,
		InstalledAt: i.now().UTC(),
	}
	if err := i.index.Put(root, rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// moduleDir returns the directory holding the versions of name, reusing the on-disk spelling.
func (i *Installer) moduleDir(ctx context.Context, root, name string) (string, error) {
	installed, err := i.inventory.List(ctx, root, name)
	if err != nil {
		return "", err
	}
	for _, m := range installed {
		if filepath.Base(m.Location) == m.Version {
			return filepath.Dir(m.Location), nil
		}
	}
	// Flat installs are located at the module directory itself.
	if len(installed) > 0 {
		return installed[0].Location, nil
	}
	return filepath.Join(root, name), nil
}

// download copies the package into a temporary file beside the module versions.
func (i *Installer) download(ctx context.Context, dir string, module domain.RemoteModule) (string, error) {
	rc, err := i.registry.Download(ctx, module)
	if err != nil {
		return "", err
	}
	defer func() { _ = rc.Close() }()

	f, err := os.CreateTemp(dir, ".download-*"+domain.PackageExtension)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}

	if _, err := io.Copy(f, rc); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}

	return f.Name(), nil
}

// isPackagingMetadata reports whether a package entry belongs to the packaging format rather than the module.
func isPackagingMetadata(name string) bool {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "_rels/"), strings.HasPrefix(lower, "package/"):
		return true
	case lower == "[content_types].xml":
		return true
	case !strings.Contains(lower, "/") && strings.HasSuffix(lower, ".nuspec"):
		return true
	}
	return false
}
