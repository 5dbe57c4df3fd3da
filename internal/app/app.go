// Package app implements the application layer for modup.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/modup/internal/core/ports"
	"go.trai.ch/modup/internal/engine/reconciler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// listConcurrency bounds the number of modules inspected in parallel by List.
const listConcurrency = 8

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	inventory    ports.ModuleInventory
	index        ports.InstallIndex
	installer    ports.Installer
	confirmer    ports.Confirmer
	cache        ports.RegistryCache
	printer      ports.ReportPrinter
	logger       ports.Logger
	reconciler   *reconciler.Reconciler
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	inventory ports.ModuleInventory,
	index ports.InstallIndex,
	installer ports.Installer,
	confirmer ports.Confirmer,
	cache ports.RegistryCache,
	printer ports.ReportPrinter,
	log ports.Logger,
	rec *reconciler.Reconciler,
) *App {
	return &App{
		configLoader: loader,
		inventory:    inventory,
		index:        index,
		installer:    installer,
		confirmer:    confirmer,
		cache:        cache,
		printer:      printer,
		logger:       log,
		reconciler:   rec,
	}
}

// SetJSONLogs switches the logger to JSON output when the logger supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// Location selects the config file and module directory of a command.
type Location struct {
	// ConfigPath overrides the config file lookup.
	ConfigPath string
	// ModulePath overrides the configured module directory.
	ModulePath string
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Location
	Modules         []string
	Pinned          map[string]string
	UpdateExisting  bool
	AllowPrerelease bool
	IncludeManual   bool
	KeepPrior       bool
	Confirm         bool
	StopOnError     bool
	// Repository is a configured repository name or a feed URL. Empty selects the default repository.
	Repository string
}

// Run reconciles the requested modules and prints the run report.
// The report is printed even when the run is cut short. Modules that fail do not stop the run
// unless StopOnError is set; the returned error then joins ErrReconcileFailed with every failure,
// including errors that interrupted the removal of old versions.
func (a *App) Run(ctx context.Context, opts RunOptions) (err error) {
	settings, err := a.settings(opts.Location)
	if err != nil {
		return err
	}

	repo, err := settings.Repository(opts.Repository)
	if err != nil {
		return err
	}

	if opts.Confirm && !a.confirmer.Interactive() {
		return domain.ErrConfirmationUnavailable
	}

	updateExisting := opts.UpdateExisting || opts.IncludeManual
	var installed []string
	if updateExisting {
		if installed, err = a.inventory.Names(ctx, settings.ModulePath); err != nil {
			return err
		}
	}

	requests, err := reconciler.ResolveRequests(reconciler.RequestInput{
		Modules:        opts.Modules,
		Pinned:         opts.Pinned,
		UpdateExisting: updateExisting,
		Installed:      installed,
	})
	if err != nil {
		return err
	}

	report := &domain.Report{}
	defer func() {
		if printErr := a.printer.Print(report); printErr != nil {
			err = errors.Join(err, printErr)
		}
	}()

	recOpts := reconciler.Options{
		Root:            settings.ModulePath,
		Repository:      repo,
		AllowPrerelease: opts.AllowPrerelease,
		IncludeManual:   opts.IncludeManual,
		KeepPrior:       opts.KeepPrior,
		Confirm:         opts.Confirm,
		Protected:       settings.ProtectedModules,
	}

	var failures []error
	for _, req := range requests {
		res := a.reconciler.Reconcile(ctx, req, recOpts)
		report.Add(res)

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if res.Err != nil {
			if !res.Failed() {
				a.logger.Warn(fmt.Sprintf("removing old versions of %s stopped: %v", res.Name, res.Err))
			}
			failures = append(failures, zerr.With(res.Err, "module", res.Name))
			if opts.StopOnError {
				break
			}
		}
	}

	if len(failures) > 0 {
		return errors.Join(append([]error{domain.ErrReconcileFailed}, failures...)...)
	}
	return nil
}

// ListOptions configuration for the List method.
type ListOptions struct {
	Location
	// Names restricts the listing to the given modules. Empty lists every installed module.
	Names []string
}

// ModuleListing is one installed module version together with its origin.
type ModuleListing struct {
	domain.InstalledModule
	// Registry is set when the module was installed from a repository.
	Registry bool
}

// List returns the installed module versions under the module directory, ordered by module name.
func (a *App) List(ctx context.Context, opts ListOptions) ([]ModuleListing, error) {
	settings, err := a.settings(opts.Location)
	if err != nil {
		return nil, err
	}
	root := settings.ModulePath

	names := opts.Names
	if len(names) == 0 {
		if names, err = a.inventory.Names(ctx, root); err != nil {
			return nil, err
		}
	}

	perModule := make([][]ModuleListing, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, name := range names {
		g.Go(func() error {
			versions, err := a.inventory.List(gctx, root, name)
			if err != nil {
				return err
			}
			rec, err := a.index.Get(root, name)
			if err != nil {
				return err
			}
			for _, m := range versions {
				perModule[i] = append(perModule[i], ModuleListing{InstalledModule: m, Registry: rec != nil})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var listings []ModuleListing
	for _, l := range perModule {
		listings = append(listings, l...)
	}
	return listings, nil
}

// UninstallOptions configuration for the Uninstall method.
type UninstallOptions struct {
	Location
	Name string
	// Version selects the version to remove. Empty removes the recorded repository version.
	Version string
	// AllVersions removes every installed version.
	AllVersions bool
	Confirm     bool
}

// Uninstall removes a module that was installed from a repository.
func (a *App) Uninstall(ctx context.Context, opts UninstallOptions) error {
	settings, err := a.settings(opts.Location)
	if err != nil {
		return err
	}
	root := settings.ModulePath

	version := ""
	target := "all versions of " + opts.Name
	if !opts.AllVersions {
		version = opts.Version
		if version == "" {
			rec, err := a.index.Get(root, opts.Name)
			if err != nil {
				return err
			}
			if rec == nil {
				return zerr.With(domain.ErrNotInstalledFromRegistry, "module", opts.Name)
			}
			version = rec.Version
		}
		target = fmt.Sprintf("%s version %s", opts.Name, version)
	}

	if opts.Confirm {
		if !a.confirmer.Interactive() {
			return domain.ErrConfirmationUnavailable
		}
		ok, err := a.confirmer.Confirm("Uninstall " + target)
		if err != nil {
			return err
		}
		if !ok {
			a.logger.Info("Kept " + target)
			return nil
		}
	}

	return a.installer.Uninstall(ctx, root, opts.Name, version)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
}

// Clean removes the cached repository responses.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	settings, err := a.settings(Location{ConfigPath: opts.ConfigPath})
	if err != nil {
		return err
	}

	a.logger.Info("removing registry cache...")
	if err := a.cache.Clear(); err != nil {
		return err
	}
	a.logger.Info("removed registry cache " + settings.CacheDir)
	return nil
}

// settings loads the configuration, applies the overrides and configures the registry cache.
func (a *App) settings(loc Location) (*domain.Settings, error) {
	settings, err := a.configLoader.Load(loc.ConfigPath)
	if err != nil {
		return nil, err
	}
	if loc.ModulePath != "" {
		settings.ModulePath = loc.ModulePath
	}
	if err := a.cache.Configure(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
