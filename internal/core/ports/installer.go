package ports

import (
	"context"

	"go.trai.ch/modup/internal/core/domain"
)

// Installer performs the mutating repository operations on a module path.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Install places module under root side by side with existing versions and records it in the index.
	Install(ctx context.Context, root string, module domain.RemoteModule) (*domain.InstallRecord, error)

	// Update installs module as the new version of a module previously installed from a repository.
	Update(ctx context.Context, root string, module domain.RemoteModule) (*domain.InstallRecord, error)

	// Uninstall removes one version of name, or every version when version is empty.
	Uninstall(ctx context.Context, root, name, version string) error
}
