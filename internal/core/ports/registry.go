package ports

import (
	"context"
	"io"

	"go.trai.ch/modup/internal/core/domain"
)

// Registry queries a remote module repository.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// Find returns the requested version of name, or the latest one when version is empty.
	// Prerelease versions are only considered for latest lookups when allowPrerelease is set.
	Find(
		ctx context.Context,
		repo domain.Repository,
		name, version string,
		allowPrerelease bool,
	) (*domain.RemoteModule, error)

	// Download opens the package archive of module. The caller closes the reader.
	Download(ctx context.Context, module domain.RemoteModule) (io.ReadCloser, error)
}
