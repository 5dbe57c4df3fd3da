package domain

import (
	"fmt"
	"strings"
)

// VersionedName is a module name paired with one version.
type VersionedName struct {
	Name    string
	Version string
}

// VersionChange records an update from one version to another.
type VersionChange struct {
	Name string
	From string
	To   string
}

// FailedModule records a module whose install or update failed.
type FailedModule struct {
	Name string
	Err  error
}

// ReportGroup is one labelled line of the run summary.
type ReportGroup struct {
	Label string
	Items []string
}

// Report aggregates module results into the groups of the run summary.
// Every group is de-duplicated.
type Report struct {
	Installed []VersionedName
	Updated   []VersionChange
	Removed   []VersionedName
	Unchanged []string
	Skipped   []string
	Failed    []FailedModule
}

// Add records a module result in the matching groups.
func (r *Report) Add(res ModuleResult) {
	switch res.State {
	case StateInstalled:
		r.addInstalled(VersionedName{Name: res.Name, Version: res.ToVersion})
	case StateUpdated:
		r.addUpdated(VersionChange{Name: res.Name, From: res.FromVersion, To: res.ToVersion})
	case StateUnchanged, StateNotFound:
		r.Unchanged = appendUnique(r.Unchanged, res.Name)
	case StateSkippedManual:
		r.Skipped = appendUnique(r.Skipped, res.Name)
	case StateFailed:
		r.addFailed(FailedModule{Name: res.Name, Err: res.Err})
	case StateDeclined:
	}

	for _, v := range res.Removed {
		r.addRemoved(VersionedName{Name: res.Name, Version: v})
	}
}

// Empty reports whether the report holds no entries at all.
func (r *Report) Empty() bool {
	return len(r.Installed) == 0 && len(r.Updated) == 0 && len(r.Removed) == 0 &&
		len(r.Unchanged) == 0 && len(r.Skipped) == 0 && len(r.Failed) == 0
}

// Groups returns the non-empty summary lines in print order.
func (r *Report) Groups() []ReportGroup {
	var groups []ReportGroup

	if len(r.Installed) > 0 {
		items := make([]string, 0, len(r.Installed))
		for _, m := range r.Installed {
			items = append(items, fmt.Sprintf("%s version %s", m.Name, m.Version))
		}
		groups = append(groups, ReportGroup{Label: "Modules Installed", Items: items})
	}

	if len(r.Updated) > 0 {
		items := make([]string, 0, len(r.Updated))
		for _, m := range r.Updated {
			items = append(items, fmt.Sprintf("%s from %s to %s", m.Name, m.From, m.To))
		}
		groups = append(groups, ReportGroup{Label: "Modules Updated", Items: items})
	}

	if len(r.Removed) > 0 {
		items := make([]string, 0, len(r.Removed))
		for _, m := range r.Removed {
			items = append(items, fmt.Sprintf("%s version %s", m.Name, m.Version))
		}
		groups = append(groups, ReportGroup{Label: "Old Versions Removed", Items: items})
	}

	if len(r.Unchanged) > 0 {
		groups = append(groups, ReportGroup{Label: "Modules Unchanged", Items: r.Unchanged})
	}

	if len(r.Skipped) > 0 {
		groups = append(groups, ReportGroup{Label: "Modules Skipped (installed manually)", Items: r.Skipped})
	}

	if len(r.Failed) > 0 {
		items := make([]string, 0, len(r.Failed))
		for _, m := range r.Failed {
			if m.Err != nil {
				items = append(items, fmt.Sprintf("%s (%s)", m.Name, m.Err.Error()))
			} else {
				items = append(items, m.Name)
			}
		}
		groups = append(groups, ReportGroup{Label: "Modules Failed", Items: items})
	}

	return groups
}

func (r *Report) addInstalled(v VersionedName) {
	for _, e := range r.Installed {
		if strings.EqualFold(e.Name, v.Name) && e.Version == v.Version {
			return
		}
	}
	r.Installed = append(r.Installed, v)
}

func (r *Report) addUpdated(c VersionChange) {
	for _, e := range r.Updated {
		if strings.EqualFold(e.Name, c.Name) && e.From == c.From && e.To == c.To {
			return
		}
	}
	r.Updated = append(r.Updated, c)
}

func (r *Report) addRemoved(v VersionedName) {
	for _, e := range r.Removed {
		if strings.EqualFold(e.Name, v.Name) && e.Version == v.Version {
			return
		}
	}
	r.Removed = append(r.Removed, v)
}

func (r *Report) addFailed(f FailedModule) {
	for _, e := range r.Failed {
		if strings.EqualFold(e.Name, f.Name) {
			return
		}
	}
	r.Failed = append(r.Failed, f)
}

func appendUnique(list []string, name string) []string {
	for _, e := range list {
		if strings.EqualFold(e, name) {
			return list
		}
	}
	return append(list, name)
}
