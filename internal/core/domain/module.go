package domain

import "time"

// ModuleRequest is one entry of the reconciliation work list.
type ModuleRequest struct {
	// Name is the module name as requested or as found on disk.
	Name string
	// DesiredVersion pins the version to reconcile to. Empty means latest.
	DesiredVersion string
	// TreatAsRegistry allows replacing a manually installed copy of an explicitly requested module.
	TreatAsRegistry bool
}

// Latest reports whether the request tracks the latest remote version.
func (r ModuleRequest) Latest() bool {
	return r.DesiredVersion == ""
}

// InstalledModule is one side-by-side version of a module found on disk.
type InstalledModule struct {
	Name     string
	Version  string
	Location string
}

// InstallRecord marks a module as installed from a repository.
// At most one record exists per module name.
type InstallRecord struct {
	Name        string    `yaml:"name"`
	Version     string    `yaml:"version"`
	Location    string    `yaml:"location"`
	Repository  string    `yaml:"repository"`
	InstalledAt time.Time `yaml:"installedAt"`
}

// RemoteModule is a module version available in a repository.
type RemoteModule struct {
	Name       string
	Version    string
	Repository Repository
}

// Repository is a named remote module feed.
type Repository struct {
	Name string
	URL  string
}
