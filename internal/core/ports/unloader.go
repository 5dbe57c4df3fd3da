package ports

import (
	"context"

	"go.trai.ch/modup/internal/core/domain"
)

// Unloader releases a module version that is currently in use.
//
//go:generate mockgen -source=unloader.go -destination=mocks/mock_unloader.go -package=mocks
type Unloader interface {
	// Unload stops anything running from the module's location. It is a no-op when nothing is loaded.
	Unload(ctx context.Context, module domain.InstalledModule) error
}
