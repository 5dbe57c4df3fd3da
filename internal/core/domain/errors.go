package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrNoModulesSpecified is returned when a run has neither explicit modules nor update-existing mode.
	ErrNoModulesSpecified = zerr.New("no modules specified")

	// ErrConflictingTargets is returned when both a module list and a pinned version map are supplied.
	ErrConflictingTargets = zerr.New("module list and pinned versions are mutually exclusive")

	// ErrInvalidModuleName is returned when a module name is empty or contains path separators.
	ErrInvalidModuleName = zerr.New("invalid module name")

	// ErrInvalidVersion is returned when a version string cannot be used as a directory name.
	ErrInvalidVersion = zerr.New("invalid module version")

	// ErrModuleNotFound is returned when a module (or the requested version) is absent from the repository.
	ErrModuleNotFound = zerr.New("module not found in repository")

	// ErrRegistryRequestFailed is returned when a repository request fails.
	ErrRegistryRequestFailed = zerr.New("failed to query module repository")

	// ErrRegistryParseFailed is returned when a repository response cannot be parsed.
	ErrRegistryParseFailed = zerr.New("failed to parse repository response")

	// ErrUnsupportedRepository is returned when a repository URL has an unsupported scheme.
	ErrUnsupportedRepository = zerr.New("unsupported repository URL")

	// ErrUnknownRepository is returned when a repository name is not defined in the configuration.
	ErrUnknownRepository = zerr.New("unknown repository")

	// ErrCacheCreateFailed is returned when the registry cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create registry cache directory")

	// ErrCacheReadFailed is returned when reading from the registry cache fails.
	ErrCacheReadFailed = zerr.New("failed to read from registry cache")

	// ErrCacheWriteFailed is returned when writing to the registry cache fails.
	ErrCacheWriteFailed = zerr.New("failed to write to registry cache")

	// ErrCacheExpired is returned when a cached entry is older than the configured TTL.
	ErrCacheExpired = zerr.New("registry cache entry expired")

	// ErrDownloadFailed is returned when a module package cannot be downloaded.
	ErrDownloadFailed = zerr.New("failed to download module package")

	// ErrExtractFailed is returned when a module package cannot be extracted.
	ErrExtractFailed = zerr.New("failed to extract module package")

	// ErrUnsafeArchiveEntry is returned when a package entry would be written outside its target directory.
	ErrUnsafeArchiveEntry = zerr.New("package entry escapes target directory")

	// ErrInstallFailed is returned when installing a module fails.
	ErrInstallFailed = zerr.New("failed to install module")

	// ErrUpdateFailed is returned when updating a module fails.
	ErrUpdateFailed = zerr.New("failed to update module")

	// ErrNotInstalledFromRegistry is returned when an update is attempted on a module without an install record.
	ErrNotInstalledFromRegistry = zerr.New("module was not installed from a repository")

	// ErrUninstallFailed is returned when uninstalling a module fails.
	ErrUninstallFailed = zerr.New("failed to uninstall module")

	// ErrModuleNotInstalled is returned when an operation targets a module that is not installed.
	ErrModuleNotInstalled = zerr.New("module is not installed")

	// ErrRemoveFailed is returned when an old module version directory cannot be removed.
	ErrRemoveFailed = zerr.New("failed to remove module directory")

	// ErrUnsafeRemoval is returned when a directory does not look like a module version directory.
	ErrUnsafeRemoval = zerr.New("refusing to remove directory whose name does not match the module version")

	// ErrInventoryReadFailed is returned when the module directory cannot be read.
	ErrInventoryReadFailed = zerr.New("failed to read module directory")

	// ErrManifestParseFailed is returned when a module manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse module manifest")

	// ErrIndexReadFailed is returned when an install record cannot be read.
	ErrIndexReadFailed = zerr.New("failed to read install record")

	// ErrIndexUnmarshalFailed is returned when an install record cannot be unmarshaled.
	ErrIndexUnmarshalFailed = zerr.New("failed to unmarshal install record")

	// ErrIndexMarshalFailed is returned when an install record cannot be marshaled.
	ErrIndexMarshalFailed = zerr.New("failed to marshal install record")

	// ErrIndexWriteFailed is returned when an install record cannot be written.
	ErrIndexWriteFailed = zerr.New("failed to write install record")

	// ErrIndexCreateFailed is returned when the install index directory cannot be created.
	ErrIndexCreateFailed = zerr.New("failed to create install index directory")

	// ErrUnloadFailed is returned when processes running from a module directory cannot be stopped.
	ErrUnloadFailed = zerr.New("failed to unload module")

	// ErrConfirmationUnavailable is returned when confirmation is required but no terminal is attached.
	ErrConfirmationUnavailable = zerr.New("confirmation requires an interactive terminal, rerun with --confirm=false")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file contains invalid values.
	ErrConfigInvalid = zerr.New("invalid config value")

	// ErrReconcileFailed is returned when one or more modules could not be reconciled.
	ErrReconcileFailed = zerr.New("one or more modules failed to reconcile")
)

// IsKind reports whether err is, or wraps, target or an error carrying target's message.
// Errors annotated with zerr.With or wrapped with zerr.Wrap(err, target.Error()) match their sentinel.
func IsKind(err, target error) bool {
	if errors.Is(err, target) {
		return true
	}
	msg := target.Error()
	for err != nil {
		if m, ok := err.(interface{ Message() string }); ok && m.Message() == msg {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
