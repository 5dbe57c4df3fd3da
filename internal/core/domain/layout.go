package domain

import (
	"path/filepath"
	"strings"
)

const (
	// ModupDirName is the name of the internal metadata directory inside the module path.
	ModupDirName = ".modup"

	// InstalledDirName is the name of the install index directory.
	InstalledDirName = "installed"

	// CacheDirName is the name of the registry response cache directory.
	CacheDirName = "registry"

	// ConfigDirName is the name of the directory holding the config file under the user config dir.
	ConfigDirName = "modup"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "modup.yaml"

	// ConfigEnvVar names the environment variable that overrides the config file location.
	ConfigEnvVar = "MODUP_CONFIG"

	// ManifestFileName is the name of the manifest a manually copied module carries.
	ManifestFileName = "module.yaml"

	// PackageExtension is the file extension of module packages.
	PackageExtension = ".nupkg"

	// DefaultRepositoryName is the name of the repository used when none is configured.
	DefaultRepositoryName = "PSGallery"

	// DefaultRepositoryURL is the flat container base URL of the default repository.
	DefaultRepositoryURL = "https://www.powershellgallery.com/api/v3/flatcontainer"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// protectedModules are the package manager's own bootstrap modules.
var protectedModules = []string{"PackageManagement", "PowerShellGet"}

// ProtectedModules returns the names of the modules that are never swept.
func ProtectedModules() []string {
	out := make([]string, len(protectedModules))
	copy(out, protectedModules)
	return out
}

// IsProtected reports whether name matches one of the built-in or extra protected module names.
func IsProtected(name string, extra []string) bool {
	for _, p := range protectedModules {
		if strings.EqualFold(p, name) {
			return true
		}
	}
	for _, p := range extra {
		if strings.EqualFold(p, name) {
			return true
		}
	}
	return false
}

// IndexPath returns the install index directory for a module path.
// It joins the module path, .modup and installed.
func IndexPath(modulePath string) string {
	return filepath.Join(modulePath, ModupDirName, InstalledDirName)
}

// DefaultModulePath returns the module directory used when none is configured.
func DefaultModulePath(dataHome string) string {
	return filepath.Join(dataHome, "modup", "modules")
}

// DefaultCachePath returns the registry cache directory under the given cache home.
func DefaultCachePath(cacheHome string) string {
	return filepath.Join(cacheHome, "modup", CacheDirName)
}

// ValidateModuleName checks that name can be used as a single directory name.
func ValidateModuleName(name string) error {
	if !validPathSegment(name) {
		return ErrInvalidModuleName
	}
	return nil
}

// ValidateVersion checks that version can be used as a single directory name.
func ValidateVersion(version string) error {
	if !validPathSegment(version) {
		return ErrInvalidVersion
	}
	return nil
}

func validPathSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, `/\`)
}
