package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modup/internal/app"
	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/modup/internal/core/ports/mocks"
	"go.trai.ch/modup/internal/engine/reconciler"
	"go.uber.org/mock/gomock"
)

const moduleRoot = "/modules"

var gallery = domain.Repository{Name: domain.DefaultRepositoryName, URL: domain.DefaultRepositoryURL}

type fixture struct {
	loader    *mocks.MockConfigLoader
	inventory *mocks.MockModuleInventory
	index     *mocks.MockInstallIndex
	registry  *mocks.MockRegistry
	installer *mocks.MockInstaller
	unloader  *mocks.MockUnloader
	confirmer *mocks.MockConfirmer
	cache     *mocks.MockRegistryCache
	printer   *mocks.MockReportPrinter
	logger    *mocks.MockLogger
	app       *app.App

	settings *domain.Settings
	report   *domain.Report
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		inventory: mocks.NewMockModuleInventory(ctrl),
		index:     mocks.NewMockInstallIndex(ctrl),
		registry:  mocks.NewMockRegistry(ctrl),
		installer: mocks.NewMockInstaller(ctrl),
		unloader:  mocks.NewMockUnloader(ctrl),
		confirmer: mocks.NewMockConfirmer(ctrl),
		cache:     mocks.NewMockRegistryCache(ctrl),
		printer:   mocks.NewMockReportPrinter(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		settings: &domain.Settings{
			ModulePath:        moduleRoot,
			DefaultRepository: gallery.Name,
			Repositories:      []domain.Repository{gallery},
			CacheDir:          "/cache/modup/registry",
			CacheTTL:          domain.DefaultCacheTTL,
		},
	}

	rec := reconciler.New(f.inventory, f.index, f.registry, f.installer, f.unloader, f.confirmer, f.logger)
	f.app = app.New(f.loader, f.inventory, f.index, f.installer, f.confirmer, f.cache, f.printer, f.logger, rec)

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return f
}

// expectSettings makes the config loader return the fixture settings for path.
func (f *fixture) expectSettings(path string) {
	f.loader.EXPECT().Load(path).Return(f.settings, nil)
	f.cache.EXPECT().Configure(f.settings).Return(nil)
}

// expectReport captures the printed report.
func (f *fixture) expectReport() {
	f.printer.EXPECT().Print(gomock.Any()).DoAndReturn(func(r *domain.Report) error {
		f.report = r
		return nil
	})
}

func versions(name string, vs ...string) []domain.InstalledModule {
	out := make([]domain.InstalledModule, 0, len(vs))
	for _, v := range vs {
		out = append(out, domain.InstalledModule{Name: name, Version: v, Location: filepath.Join(moduleRoot, name, v)})
	}
	return out
}

func remote(name, version string) *domain.RemoteModule {
	return &domain.RemoteModule{Name: name, Version: version, Repository: gallery}
}

func record(name, version string) *domain.InstallRecord {
	return &domain.InstallRecord{Name: name, Version: version, Repository: gallery.Name}
}

func TestApp_Run_InstallsAndReports(t *testing.T) {
	f := newFixture(t)
	f.expectSettings("")
	f.expectReport()

	f.inventory.EXPECT().List(gomock.Any(), moduleRoot, "Pester").Return(nil, nil)
	f.index.EXPECT().Get(moduleRoot, "Pester").Return(nil, nil)
	f.registry.EXPECT().Find(gomock.Any(), gallery, "Pester", "", false).Return(remote("Pester", "5.5.0"), nil)
	f.installer.EXPECT().Install(gomock.Any(), moduleRoot, *remote("Pester", "5.5.0")).
		Return(record("Pester", "5.5.0"), nil)
	f.inventory.EXPECT().List(gomock.Any(), moduleRoot, "Pester").Return(versions("Pester", "5.5.0"), nil)

	err := f.app.Run(context.Background(), app.RunOptions{Modules: []string{"Pester"}})

	require.NoError(t, err)
	require.NotNil(t, f.report)
	assert.Equal(t, []domain.VersionedName{{Name: "Pester", Version: "5.5.0"}}, f.report.Installed)
}

func TestApp_Run_ContinuesAfterFailure(t *testing.T) {
	f := newFixture(t)
	f.expectSettings("")
	f.expectReport()

	f.inventory.EXPECT().List(gomock.Any(), moduleRoot, "Broken").Return(nil, nil)
	f.index.EXPECT().Get(moduleRoot, "Broken").Return(nil, nil)
	f.registry.EXPECT().Find(gomock.Any(), gallery, "Broken", "", false).Return(remote("Broken", "1.0.0"), nil)
	f.installer.EXPECT().Install(gomock.Any(), moduleRoot, gomock.Any()).Return(nil, domain.ErrInstallFailed)

	f.inventory.EXPECT().List(gomock.Any(), moduleRoot, "Pester").Return(versions("Pester", "5.5.0"), nil).Times(2)
	f.index.EXPECT().Get(moduleRoot, "Pester").Return(record("Pester", "5.5.0"), nil)
	f.registry.EXPECT().Find(gomock.Any(), gallery, "Pester", "", false).Return(remote("Pester", "5.5.0"), nil)

	err := f.app.Run(context.Background(), app.RunOptions{Modules: []string{"Broken", "Pester"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrReconcileFailed))
	assert.ErrorContains(t, err, "failed to install module")
	require.NotNil(t, f.report)
	require.Len(t, f.report.Failed, 1)
	assert.Equal(t, "Broken", f.report.Failed[0].Name)
	assert.Equal(t, []string{"Pester"}, f.report.Unchanged)
}

func TestApp_Run_StopOnError(t *testing.T) {
	f := newFixture(t)
	f.expectSettings("")
	f.expectReport()

	f.inventory.EXPECT().List(gomock.Any(), moduleRoot, "Broken").Return(nil, domain.ErrInventoryReadFailed)

	err := f.app.Run(context.Background(), app.RunOptions{
		Modules:     []string{"Broken", "Pester"},
		StopOnError: true,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrReconcileFailed))
	require.Len(t, f.report.Failed, 1)
	assert.Empty(t, f.report.Unchanged)
}

func TestApp_Run_UpdateExisting(t *testing.T) {
	f := newFixture(t)
	f.expectSettings("")
	f.expectReport()

	f.inventory.EXPECT().Names(gomock.Any(), moduleRoot).Return([]string{"Pester"}, nil)
	f.inventory.EXPECT().List(gomock.Any(), moduleRoot, "Pester").Return(versions("Pester", "5.5.0"), nil).Times(2)
	f.index.EXPECT().Get(moduleRoot, "Pester").Return(nil, nil)
	f.registry.EXPECT().Find(gomock.Any(), gallery, "Pester", "", true).Return(remote("Pester", "6.0.0-beta1"), nil)

	err := f.app.Run(context.Background(), app.RunOptions{UpdateExisting: true, AllowPrerelease: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"Pester"}, f.report.Skipped)
}

func TestApp_Run_Overrides(t *testing.T) {
	f := newFixture(t)
	internal := domain.Repository{Name: "Internal", URL: "https://feed.example.test/v3/flatcontainer"}
	f.settings.Repositories = append(f.settings.Repositories, internal)
	f.expectSettings("/etc/modup.yaml")
	f.expectReport()

	f.inventory.EXPECT().List(gomock.Any(), "/srv/modules", "Pester").Return(versions("Pester", "5.5.0"), nil).Times(2)
	f.index.EXPECT().Get("/srv/modules", "Pester").Return(record("Pester", "5.5.0"), nil)
	f.registry.EXPECT().Find(gomock.Any(), internal, "Pester", "", false).Return(remote("Pester", "5.5.0"), nil)

	err := f.app.Run(context.Background(), app.RunOptions{
		Location:   app.Location{ConfigPath: "/etc/modup.yaml", ModulePath: "/srv/modules"},
		Modules:    []string{"Pester"},
		Repository: "internal",
	})

	require.NoError(t, err)
	assert.Equal(t, "/srv/modules", f.settings.ModulePath)
}

func TestApp_Run_EarlyErrors(t *testing.T) {
	t.Run("config failure", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load("").Return(nil, domain.ErrConfigParseFailed)

		err := f.app.Run(context.Background(), app.RunOptions{Modules: []string{"Pester"}})

		assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})

	t.Run("unknown repository", func(t *testing.T) {
		f := newFixture(t)
		f.expectSettings("")

		err := f.app.Run(context.Background(), app.RunOptions{Modules: []string{"Pester"}, Repository: "Nope"})

		assert.ErrorContains(t, err, "unknown repository")
	})

	t.Run("confirmation without terminal", func(t *testing.T) {
		f := newFixture(t)
		f.expectSettings("")
		f.confirmer.EXPECT().Interactive().Return(false)

		err := f.app.Run(context.Background(), app.RunOptions{Modules: []string{"Pester"}, Confirm: true})

		assert.ErrorIs(t, err, domain.ErrConfirmationUnavailable)
	})

	t.Run("no targets", func(t *testing.T) {
		f := newFixture(t)
		f.expectSettings("")

		err := f.app.Run(context.Background(), app.RunOptions{})

		assert.ErrorIs(t, err, domain.ErrNoModulesSpecified)
	})
}

func TestApp_Run_SweepPromptErrorFailsRun(t *testing.T) {
	f := newFixture(t)
	f.expectSettings("")
	f.expectReport()

	local := versions("Pester", "4.10.1", "5.5.0")
	f.confirmer.EXPECT().Interactive().Return(true)
	f.inventory.EXPECT().List(gomock.Any(), moduleRoot, "Pester").Return(local, nil).Times(2)
	f.index.EXPECT().Get(moduleRoot, "Pester").Return(record("Pester", "5.5.0"), nil)
	f.registry.EXPECT().Find(gomock.Any(), gallery, "Pester", "", false).Return(remote("Pester", "5.5.0"), nil)
	f.confirmer.EXPECT().Confirm("Remove module Pester version 4.10.1").Return(false, assert.AnError)

	err := f.app.Run(context.Background(), app.RunOptions{Modules: []string{"Pester"}, Confirm: true})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrReconcileFailed))
	assert.ErrorIs(t, err, assert.AnError)
	require.NotNil(t, f.report)
	assert.Equal(t, []string{"Pester"}, f.report.Unchanged)
}

func TestApp_Run_CancelledStillReports(t *testing.T) {
	f := newFixture(t)
	f.expectSettings("")
	f.expectReport()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.inventory.EXPECT().List(gomock.Any(), moduleRoot, "Pester").Return(versions("Pester", "4.10.1"), nil)
	f.index.EXPECT().Get(moduleRoot, "Pester").Return(record("Pester", "4.10.1"), nil)
	f.registry.EXPECT().Find(gomock.Any(), gallery, "Pester", "", false).
		DoAndReturn(func(context.Context, domain.Repository, string, string, bool) (*domain.RemoteModule, error) {
			cancel()
			return nil, context.Canceled
		})

	err := f.app.Run(ctx, app.RunOptions{Modules: []string{"Pester", "PSReadLine"}})

	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, f.report)
	require.Len(t, f.report.Failed, 1)
}

func TestApp_Run_PrintError(t *testing.T) {
	f := newFixture(t)
	f.expectSettings("")
	f.printer.EXPECT().Print(gomock.Any()).Return(assert.AnError)

	f.inventory.EXPECT().List(gomock.Any(), moduleRoot, "Pester").Return(versions("Pester", "5.5.0"), nil).Times(2)
	f.index.EXPECT().Get(moduleRoot, "Pester").Return(nil, nil)
	f.registry.EXPECT().Find(gomock.Any(), gallery, "Pester", "5.5.0", false).Times(0)

	err := f.app.Run(context.Background(), app.RunOptions{Pinned: map[string]string{"Pester": "5.5.0"}})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestApp_List(t *testing.T) {
	f := newFixture(t)
	f.expectSettings("")

	f.inventory.EXPECT().Names(gomock.Any(), moduleRoot).Return([]string{"Pester", "platyPS"}, nil)
	f.inventory.EXPECT().List(gomock.Any(), moduleRoot, "Pester").Return(versions("Pester", "4.10.1", "5.5.0"), nil)
	f.inventory.EXPECT().List(gomock.Any(), moduleRoot, "platyPS").Return(versions("platyPS", "0.14.2"), nil)
	f.index.EXPECT().Get(moduleRoot, "Pester").Return(record("Pester", "5.5.0"), nil)
	f.index.EXPECT().Get(moduleRoot, "platyPS").Return(nil, nil)

	got, err := f.app.List(context.Background(), app.ListOptions{})

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "4.10.1", got[0].Version)
	assert.True(t, got[0].Registry)
	assert.Equal(t, "5.5.0", got[1].Version)
	assert.Equal(t, "platyPS", got[2].Name)
	assert.False(t, got[2].Registry)
}

func TestApp_List_Named(t *testing.T) {
	f := newFixture(t)
	f.expectSettings("")

	f.inventory.EXPECT().List(gomock.Any(), moduleRoot, "Pester").Return(nil, domain.ErrInventoryReadFailed)
	f.index.EXPECT().Get(moduleRoot, gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := f.app.List(context.Background(), app.ListOptions{Names: []string{"Pester"}})

	assert.ErrorIs(t, err, domain.ErrInventoryReadFailed)
}

func TestApp_Uninstall(t *testing.T) {
	t.Run("recorded version", func(t *testing.T) {
		f := newFixture(t)
		f.expectSettings("")
		f.index.EXPECT().Get(moduleRoot, "Pester").Return(record("Pester", "5.5.0"), nil)
		f.installer.EXPECT().Uninstall(gomock.Any(), moduleRoot, "Pester", "5.5.0").Return(nil)

		require.NoError(t, f.app.Uninstall(context.Background(), app.UninstallOptions{Name: "Pester"}))
	})

	t.Run("explicit version", func(t *testing.T) {
		f := newFixture(t)
		f.expectSettings("")
		f.installer.EXPECT().Uninstall(gomock.Any(), moduleRoot, "Pester", "4.10.1").Return(nil)

		err := f.app.Uninstall(context.Background(), app.UninstallOptions{Name: "Pester", Version: "4.10.1"})
		require.NoError(t, err)
	})

	t.Run("all versions", func(t *testing.T) {
		f := newFixture(t)
		f.expectSettings("")
		f.installer.EXPECT().Uninstall(gomock.Any(), moduleRoot, "Pester", "").Return(nil)

		err := f.app.Uninstall(context.Background(), app.UninstallOptions{
			Name:        "Pester",
			Version:     "4.10.1",
			AllVersions: true,
		})
		require.NoError(t, err)
	})

	t.Run("manual module", func(t *testing.T) {
		f := newFixture(t)
		f.expectSettings("")
		f.index.EXPECT().Get(moduleRoot, "platyPS").Return(nil, nil)

		err := f.app.Uninstall(context.Background(), app.UninstallOptions{Name: "platyPS"})
		assert.ErrorContains(t, err, "module was not installed from a repository")
	})

	t.Run("declined", func(t *testing.T) {
		f := newFixture(t)
		f.expectSettings("")
		f.index.EXPECT().Get(moduleRoot, "Pester").Return(record("Pester", "5.5.0"), nil)
		f.confirmer.EXPECT().Interactive().Return(true)
		f.confirmer.EXPECT().Confirm("Uninstall Pester version 5.5.0").Return(false, nil)

		err := f.app.Uninstall(context.Background(), app.UninstallOptions{Name: "Pester", Confirm: true})
		require.NoError(t, err)
	})
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t)
	f.expectSettings("custom.yaml")
	f.cache.EXPECT().Clear().Return(nil)

	require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{ConfigPath: "custom.yaml"}))
}

func TestApp_Clean_Error(t *testing.T) {
	f := newFixture(t)
	f.expectSettings("")
	f.cache.EXPECT().Clear().Return(domain.ErrCacheWriteFailed)

	assert.ErrorIs(t, f.app.Clean(context.Background(), app.CleanOptions{}), domain.ErrCacheWriteFailed)
}

func TestApp_SetJSONLogs(t *testing.T) {
	f := newFixture(t)
	// The mock logger has no JSON mode, so the call is a no-op.
	f.app.SetJSONLogs(true)
}
