package ports

import "go.trai.ch/modup/internal/core/domain"

// RegistryCache controls the on-disk cache of repository responses.
//
//go:generate mockgen -source=registry_cache.go -destination=mocks/mock_registry_cache.go -package=mocks
type RegistryCache interface {
	// Configure applies the cache location, TTL and transport settings of a run.
	Configure(settings *domain.Settings) error

	// Clear removes every cached repository response.
	Clear() error
}
