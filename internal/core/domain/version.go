package domain

import (
	"sort"
	"strings"

	"github.com/hashicorp/go-version"
)

// VersionsEqual reports whether a and b denote the same version.
// Parsable versions compare semantically so "1.0" equals "1.0.0".
// Anything else falls back to a case-insensitive string comparison.
func VersionsEqual(a, b string) bool {
	va, errA := version.NewVersion(a)
	vb, errB := version.NewVersion(b)
	if errA == nil && errB == nil {
		return va.Equal(vb)
	}
	return strings.EqualFold(a, b)
}

// CompareVersions returns -1, 0 or 1 comparing a to b.
// Parsable versions rank above unparsable ones.
func CompareVersions(a, b string) int {
	va, errA := version.NewVersion(a)
	vb, errB := version.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		return va.Compare(vb)
	case errA == nil:
		return 1
	case errB == nil:
		return -1
	default:
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
}

// IsPrerelease reports whether v parses as a version with a prerelease segment.
func IsPrerelease(v string) bool {
	parsed, err := version.NewVersion(v)
	if err != nil {
		return false
	}
	return parsed.Prerelease() != ""
}

// SortVersions sorts versions ascending in place.
func SortVersions(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		return CompareVersions(versions[i], versions[j]) < 0
	})
}

// HighestVersion returns the highest of versions, or "" when versions is empty.
func HighestVersion(versions []string) string {
	var best string
	for i, v := range versions {
		if i == 0 || CompareVersions(v, best) > 0 {
			best = v
		}
	}
	return best
}

// HighestInstalled returns the installed module with the highest version.
func HighestInstalled(modules []InstalledModule) (InstalledModule, bool) {
	if len(modules) == 0 {
		return InstalledModule{}, false
	}
	best := modules[0]
	for _, m := range modules[1:] {
		if CompareVersions(m.Version, best.Version) > 0 {
			best = m
		}
	}
	return best, true
}

// IsVersion reports whether s parses as a version.
func IsVersion(s string) bool {
	_, err := version.NewVersion(s)
	return err == nil
}
