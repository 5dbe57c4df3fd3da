package reconciler

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/modup/internal/core/domain"
)

// sweep removes every installed version of name other than keep and returns the removed versions.
// Removal problems are logged and skipped. Only cancellation and confirmation errors are returned.
func (r *Reconciler) sweep(ctx context.Context, name, keep string, opts Options) ([]string, error) {
	if opts.KeepPrior || domain.IsProtected(name, opts.Protected) {
		return nil, nil
	}

	local, err := r.inventory.List(ctx, opts.Root, name)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		r.logger.Warn(fmt.Sprintf("could not list old versions of %s: %v", name, err))
		return nil, nil
	}

	var removed []string
	for _, m := range local {
		if domain.VersionsEqual(m.Version, keep) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		// A flat install directory holds every version of the module, so it is neither unloaded nor removed.
		if filepath.Base(m.Location) != m.Version {
			r.logger.Warn(fmt.Sprintf(
				"not removing %s version %s: directory %s is not named after the version",
				name, m.Version, m.Location))
			continue
		}

		ok, err := r.confirm(opts, fmt.Sprintf("Remove module %s version %s", name, m.Version))
		if err != nil {
			return removed, err
		}
		if !ok {
			continue
		}

		if err := r.unloader.Unload(ctx, m); err != nil {
			r.logger.Warn(fmt.Sprintf("could not unload %s version %s, keeping it: %v", name, m.Version, err))
			continue
		}

		if err := r.inventory.Remove(ctx, m); err != nil {
			r.logger.Warn(fmt.Sprintf("could not remove %s version %s: %v", name, m.Version, err))
			continue
		}

		r.logger.Info(fmt.Sprintf("Removed %s version %s", name, m.Version))
		removed = append(removed, m.Version)
	}

	return removed, nil
}
