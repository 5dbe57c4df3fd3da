package ports

import (
	"context"

	"go.trai.ch/modup/internal/core/domain"
)

// ModuleInventory enumerates and deletes the module versions installed under a module path.
//
//go:generate mockgen -source=inventory.go -destination=mocks/mock_inventory.go -package=mocks
type ModuleInventory interface {
	// List returns every installed version of the named module.
	// The name is matched case-insensitively. A module that is not installed yields an empty slice.
	List(ctx context.Context, root, name string) ([]domain.InstalledModule, error)

	// Names returns the names of all installed modules, sorted.
	Names(ctx context.Context, root string) ([]string, error)

	// Remove deletes the on-disk directory of one installed module version.
	Remove(ctx context.Context, module domain.InstalledModule) error
}
