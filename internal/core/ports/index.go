package ports

import "go.trai.ch/modup/internal/core/domain"

// InstallIndex records which modules were installed from a repository.
//
//go:generate mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type InstallIndex interface {
	// Get returns the install record for name, or nil if the module was not installed from a repository.
	Get(root, name string) (*domain.InstallRecord, error)

	// Put stores rec, replacing any existing record for the same module.
	Put(root string, rec domain.InstallRecord) error

	// Delete removes the record for name. Deleting a missing record is not an error.
	Delete(root, name string) error
}
