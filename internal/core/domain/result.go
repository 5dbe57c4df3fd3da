package domain

// ResultState classifies the outcome of reconciling one module.
type ResultState int

const (
	// StateUnchanged means the installed version already matched the target.
	StateUnchanged ResultState = iota
	// StateInstalled means the module was not present and has been installed.
	StateInstalled
	// StateUpdated means a stale version was replaced by the target version.
	StateUpdated
	// StateNotFound means the repository lookup failed. The module is treated as unchanged.
	StateNotFound
	// StateSkippedManual means a newer version exists but the local copy was installed manually.
	StateSkippedManual
	// StateDeclined means the operator declined the install or update.
	StateDeclined
	// StateFailed means the install or update failed.
	StateFailed
)

// String returns the lowercase state name.
func (s ResultState) String() string {
	switch s {
	case StateUnchanged:
		return "unchanged"
	case StateInstalled:
		return "installed"
	case StateUpdated:
		return "updated"
	case StateNotFound:
		return "not found"
	case StateSkippedManual:
		return "skipped"
	case StateDeclined:
		return "declined"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ModuleResult is the outcome of reconciling one module request.
type ModuleResult struct {
	Name        string
	State       ResultState
	FromVersion string
	ToVersion   string
	// Removed lists the old versions swept off disk.
	Removed []string
	Err     error
}

// Failed reports whether the module ended in the failed state.
func (r ModuleResult) Failed() bool {
	return r.State == StateFailed
}
