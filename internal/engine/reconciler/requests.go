package reconciler

import (
	"slices"
	"strings"

	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/zerr"
)

// RequestInput holds the raw targets of a run before they are merged into a work list.
type RequestInput struct {
	// Modules lists modules to reconcile to their latest version.
	Modules []string
	// Pinned maps module names to the exact version to reconcile to.
	Pinned map[string]string
	// UpdateExisting adds every installed module to the work list.
	UpdateExisting bool
	// Installed holds the installed module names, consulted only with UpdateExisting.
	Installed []string
}

// ResolveRequests merges the targets of a run into an ordered work list.
//
// Explicit entries come first: the module list in the given order, or the pinned map sorted
// by name. Installed modules follow, sorted, unless already requested. Names are compared
// case-insensitively and the first spelling wins.
func ResolveRequests(in RequestInput) ([]domain.ModuleRequest, error) {
	if len(in.Modules) > 0 && len(in.Pinned) > 0 {
		return nil, domain.ErrConflictingTargets
	}
	if len(in.Modules) == 0 && len(in.Pinned) == 0 && !in.UpdateExisting {
		return nil, domain.ErrNoModulesSpecified
	}

	seen := make(map[string]struct{})
	requests := make([]domain.ModuleRequest, 0, len(in.Modules)+len(in.Pinned)+len(in.Installed))

	add := func(req domain.ModuleRequest) error {
		if err := domain.ValidateModuleName(req.Name); err != nil {
			return zerr.With(err, "module", req.Name)
		}
		key := strings.ToLower(req.Name)
		if _, ok := seen[key]; ok {
			return nil
		}
		seen[key] = struct{}{}
		requests = append(requests, req)
		return nil
	}

	for _, name := range in.Modules {
		if err := add(domain.ModuleRequest{Name: name, TreatAsRegistry: in.UpdateExisting}); err != nil {
			return nil, err
		}
	}

	for _, name := range sortedNames(in.Pinned) {
		version := in.Pinned[name]
		if version != "" {
			if err := domain.ValidateVersion(version); err != nil {
				return nil, zerr.With(err, "module", name)
			}
		}
		req := domain.ModuleRequest{Name: name, DesiredVersion: version, TreatAsRegistry: in.UpdateExisting}
		if err := add(req); err != nil {
			return nil, err
		}
	}

	if !in.UpdateExisting {
		return requests, nil
	}

	installed := slices.Clone(in.Installed)
	sortFold(installed)
	for _, name := range installed {
		if err := add(domain.ModuleRequest{Name: name}); err != nil {
			return nil, err
		}
	}

	return requests, nil
}

func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sortFold(names)
	return names
}

// sortFold orders names case-insensitively, breaking ties by byte order so the result is stable.
func sortFold(names []string) {
	slices.SortFunc(names, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}
