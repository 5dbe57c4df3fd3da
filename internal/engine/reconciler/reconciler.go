package reconciler

import (
	"context"
	"fmt"

	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/modup/internal/core/ports"
)

// Options configures how a module request is reconciled.
type Options struct {
	// Root is the module directory.
	Root string
	// Repository is the feed remote lookups go to.
	Repository domain.Repository
	// AllowPrerelease lets latest lookups pick prerelease versions.
	AllowPrerelease bool
	// IncludeManual replaces manually installed modules with the repository version.
	IncludeManual bool
	// KeepPrior disables the removal of superseded versions.
	KeepPrior bool
	// Confirm asks the operator before every install, update and removal.
	Confirm bool
	// Protected names modules whose old versions are never removed, in addition to the built-in ones.
	Protected []string
}

// Reconciler drives a single module from its installed state to the requested version.
type Reconciler struct {
	inventory ports.ModuleInventory
	index     ports.InstallIndex
	registry  ports.Registry
	installer ports.Installer
	unloader  ports.Unloader
	confirmer ports.Confirmer
	logger    ports.Logger
}

// New creates a new Reconciler with the given dependencies.
func New(
	inventory ports.ModuleInventory,
	index ports.InstallIndex,
	registry ports.Registry,
	installer ports.Installer,
	unloader ports.Unloader,
	confirmer ports.Confirmer,
	logger ports.Logger,
) *Reconciler {
	return &Reconciler{
		inventory: inventory,
		index:     index,
		registry:  registry,
		installer: installer,
		unloader:  unloader,
		confirmer: confirmer,
		logger:    logger,
	}
}

// Reconcile brings one module to the requested version and removes the versions it supersedes.
// Failures are reported in the result rather than returned, so callers can move on to the next module.
func (r *Reconciler) Reconcile(ctx context.Context, req domain.ModuleRequest, opts Options) domain.ModuleResult {
	res := domain.ModuleResult{Name: req.Name}
	if err := ctx.Err(); err != nil {
		return failed(res, err)
	}

	r.logger.Info("Checking module " + req.Name)

	local, err := r.inventory.List(ctx, opts.Root, req.Name)
	if err != nil {
		return failed(res, err)
	}
	rec, err := r.index.Get(opts.Root, req.Name)
	if err != nil {
		return failed(res, err)
	}

	// A record whose version is gone says nothing about what is on disk now.
	if rec != nil && !hasVersion(local, rec.Version) {
		r.logger.Warn(fmt.Sprintf(
			"install record of %s points at version %s, which is no longer on disk", req.Name, rec.Version))
		rec = nil
	}

	if len(local) == 0 {
		return r.installMissing(ctx, req, opts)
	}
	return r.reconcileInstalled(ctx, req, local, rec, opts)
}

// installMissing handles a module with no version on disk.
func (r *Reconciler) installMissing(ctx context.Context, req domain.ModuleRequest, opts Options) domain.ModuleResult {
	res := domain.ModuleResult{Name: req.Name}

	remote, err := r.find(ctx, req, opts)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return failed(res, ctxErr)
		}
		res.State = domain.StateNotFound
		return res
	}

	ok, err := r.confirm(opts, fmt.Sprintf("Install module %s version %s", req.Name, remote.Version))
	if err != nil {
		return failed(res, err)
	}
	if !ok {
		res.State = domain.StateDeclined
		return res
	}

	if _, err := r.installer.Install(ctx, opts.Root, *remote); err != nil {
		return failed(res, err)
	}
	r.logger.Info(fmt.Sprintf("Installed %s version %s", req.Name, remote.Version))

	res.State = domain.StateInstalled
	res.ToVersion = remote.Version
	return r.finish(ctx, res, remote.Version, opts)
}

// reconcileInstalled handles a module with at least one version on disk.
func (r *Reconciler) reconcileInstalled(
	ctx context.Context,
	req domain.ModuleRequest,
	local []domain.InstalledModule,
	rec *domain.InstallRecord,
	opts Options,
) domain.ModuleResult {
	res := domain.ModuleResult{Name: req.Name}

	current := currentVersion(local, rec)
	res.FromVersion = current
	res.ToVersion = current

	if !req.Latest() && domain.VersionsEqual(req.DesiredVersion, current) {
		res.State = domain.StateUnchanged
		return r.finish(ctx, res, current, opts)
	}

	remote, err := r.find(ctx, req, opts)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return failed(res, ctxErr)
		}
		res.State = domain.StateNotFound
		return r.finish(ctx, res, current, opts)
	}

	if domain.VersionsEqual(remote.Version, current) {
		res.State = domain.StateUnchanged
		return r.finish(ctx, res, current, opts)
	}

	if rec == nil && !opts.IncludeManual && !req.TreatAsRegistry {
		r.logger.Info(fmt.Sprintf(
			"Module %s version %s was installed manually, skipping version %s", req.Name, current, remote.Version))
		res.State = domain.StateSkippedManual
		return r.finish(ctx, res, current, opts)
	}

	ok, err := r.confirm(opts, fmt.Sprintf("Update module %s from %s to %s", req.Name, current, remote.Version))
	if err != nil {
		return failed(res, err)
	}
	if !ok {
		res.State = domain.StateDeclined
		return res
	}

	if rec != nil {
		_, err = r.installer.Update(ctx, opts.Root, *remote)
	} else {
		_, err = r.installer.Install(ctx, opts.Root, *remote)
	}
	if err != nil {
		return failed(res, err)
	}
	r.logger.Info(fmt.Sprintf("Updated %s from %s to %s", req.Name, current, remote.Version))

	res.State = domain.StateUpdated
	res.ToVersion = remote.Version
	return r.finish(ctx, res, remote.Version, opts)
}

// finish sweeps the versions superseded by keep and attaches the outcome to res.
func (r *Reconciler) finish(
	ctx context.Context,
	res domain.ModuleResult,
	keep string,
	opts Options,
) domain.ModuleResult {
	res.Removed, res.Err = r.sweep(ctx, res.Name, keep, opts)
	return res
}

// find looks the requested version up and logs why a lookup came back empty.
func (r *Reconciler) find(
	ctx context.Context,
	req domain.ModuleRequest,
	opts Options,
) (*domain.RemoteModule, error) {
	remote, err := r.registry.Find(ctx, opts.Repository, req.Name, req.DesiredVersion, opts.AllowPrerelease)
	if err == nil {
		return remote, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	target := req.Name
	if !req.Latest() {
		target += " version " + req.DesiredVersion
	}
	if domain.IsKind(err, domain.ErrModuleNotFound) {
		r.logger.Warn(fmt.Sprintf("module %s was not found in repository %s", target, opts.Repository.Name))
	} else {
		r.logger.Warn(fmt.Sprintf("could not look up module %s in repository %s: %v",
			target, opts.Repository.Name, err))
	}
	return nil, err
}

func (r *Reconciler) confirm(opts Options, action string) (bool, error) {
	if !opts.Confirm {
		return true, nil
	}
	return r.confirmer.Confirm(action)
}

// currentVersion is the recorded repository version, or the highest version on disk.
func currentVersion(local []domain.InstalledModule, rec *domain.InstallRecord) string {
	if rec != nil {
		return rec.Version
	}
	highest, _ := domain.HighestInstalled(local)
	return highest.Version
}

func hasVersion(local []domain.InstalledModule, version string) bool {
	for _, m := range local {
		if domain.VersionsEqual(m.Version, version) {
			return true
		}
	}
	return false
}

func failed(res domain.ModuleResult, err error) domain.ModuleResult {
	res.State = domain.StateFailed
	res.Err = err
	return res
}
