// Package registry implements the Registry port against NuGet v3 flat-container feeds.
package registry

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/modup/internal/core/ports"
	"go.trai.ch/zerr"
)

const defaultBackoff = 250 * time.Millisecond

// Client implements ports.Registry and ports.RegistryCache.
// Version listings of remote feeds are cached on disk. Local file:// feeds are read directly.
type Client struct {
	logger ports.Logger

	mu         sync.RWMutex
	cacheDir   string
	ttl        time.Duration
	retries    int
	backoff    time.Duration
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a Client with default settings. Configure applies the settings of a run.
func NewClient(logger ports.Logger) *Client {
	cacheHome, err := os.UserCacheDir()
	if err != nil {
		cacheHome = os.TempDir()
	}

	return &Client{
		logger:     logger,
		cacheDir:   domain.DefaultCachePath(cacheHome),
		ttl:        domain.DefaultCacheTTL,
		retries:    domain.DefaultHTTPRetries,
		backoff:    defaultBackoff,
		httpClient: &http.Client{Timeout: domain.DefaultHTTPTimeout},
		now:        time.Now,
	}
}

// newClientWithHTTP creates a Client with a custom http client and cache directory (used for testing).
func newClientWithHTTP(logger ports.Logger, cacheDir string, client *http.Client) *Client {
	c := NewClient(logger)
	c.cacheDir = cacheDir
	c.httpClient = client
	c.backoff = 0
	return c
}

// Configure applies the cache and transport settings.
func (c *Client) Configure(settings *domain.Settings) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if settings.CacheDir != "" {
		c.cacheDir = settings.CacheDir
	}
	c.ttl = settings.CacheTTL
	c.retries = settings.HTTPRetries
	if settings.HTTPTimeout > 0 {
		c.httpClient.Timeout = settings.HTTPTimeout
	}
	return nil
}

// Clear removes the cache directory.
func (c *Client) Clear() error {
	c.mu.RLock()
	dir := c.cacheDir
	c.mu.RUnlock()

	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", dir)
	}
	return nil
}

// Find returns the requested version of name from repo.
// An empty version selects the highest stable version, or the highest of all
// versions when allowPrerelease is set. A pinned version is returned even if it is a prerelease.
func (c *Client) Find(
	ctx context.Context,
	repo domain.Repository,
	name, version string,
	allowPrerelease bool,
) (*domain.RemoteModule, error) {
	if err := domain.ValidateModuleName(name); err != nil {
		return nil, zerr.With(err, "module", name)
	}

	versions, cached, err := c.versions(ctx, repo, name, false)
	if err != nil {
		return nil, err
	}

	found := pick(versions, version, allowPrerelease)
	if found == "" && cached {
		// The cached listing may predate the requested release.
		if versions, _, err = c.versions(ctx, repo, name, true); err != nil {
			return nil, err
		}
		found = pick(versions, version, allowPrerelease)
	}

	if found == "" {
		err := zerr.With(zerr.With(domain.ErrModuleNotFound, "module", name), "repository", repo.Name)
		if version != "" {
			err = zerr.With(err, "version", version)
		}
		return nil, err
	}

	return &domain.RemoteModule{Name: name, Version: found, Repository: repo}, nil
}

// Download opens the package archive of module.
func (c *Client) Download(ctx context.Context, module domain.RemoteModule) (io.ReadCloser, error) {
	if err := domain.ValidateModuleName(module.Name); err != nil {
		return nil, zerr.With(err, "module", module.Name)
	}
	if err := domain.ValidateVersion(module.Version); err != nil {
		return nil, zerr.With(err, "version", module.Version)
	}

	id := strings.ToLower(module.Name)
	ver := strings.ToLower(module.Version)
	rc, err := c.open(ctx, module.Repository, id, ver, id+"."+ver+domain.PackageExtension)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "module", module.Name)
		return nil, zerr.With(err, "version", module.Version)
	}
	return rc, nil
}

// versions returns the version listing of name, from the cache unless refresh is set.
// The second result reports whether the listing was served from the cache.
func (c *Client) versions(
	ctx context.Context,
	repo domain.Repository,
	name string,
	refresh bool,
) ([]string, bool, error) {
	id := strings.ToLower(name)

	if isFileFeed(repo.URL) {
		versions, err := c.fetchVersions(ctx, repo, id)
		return versions, false, err
	}

	c.mu.RLock()
	cacheDir, ttl := c.cacheDir, c.ttl
	c.mu.RUnlock()

	path := cachePath(cacheDir, repo.URL, id)
	if !refresh && ttl > 0 {
		if versions, err := loadCache(path, ttl, c.now()); err == nil {
			return versions, true, nil
		}
	}

	versions, err := c.fetchVersions(ctx, repo, id)
	if err != nil {
		return nil, false, err
	}

	if ttl > 0 {
		entry := cacheEntry{Repository: repo.URL, Module: id, Versions: versions, FetchedAt: c.now()}
		if err := saveCache(path, &entry); err != nil {
			c.logger.Warn("could not cache versions of " + name + ": " + err.Error())
		}
	}

	return versions, false, nil
}

// pick selects the version matching want, or the latest eligible version when want is empty.
func pick(versions []string, want string, allowPrerelease bool) string {
	if want != "" {
		for _, v := range versions {
			if domain.VersionsEqual(v, want) {
				return v
			}
		}
		return ""
	}

	eligible := make([]string, 0, len(versions))
	for _, v := range versions {
		if allowPrerelease || !domain.IsPrerelease(v) {
			eligible = append(eligible, v)
		}
	}
	return domain.HighestVersion(eligible)
}
