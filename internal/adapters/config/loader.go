// Package config loads modup.yaml into domain.Settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/modup/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Dirs are the per-user base directories the defaults are derived from.
type Dirs struct {
	ConfigHome string
	CacheHome  string
	DataHome   string
}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	dirs   func() (Dirs, error)
	getenv func(string) string
}

// NewLoader creates a Loader that derives defaults from the current user's directories.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, dirs: userDirs, getenv: os.Getenv}
}

// NewLoaderWithDirs creates a Loader with fixed base directories and environment lookup.
func NewLoaderWithDirs(logger ports.Logger, dirs Dirs, getenv func(string) string) *Loader {
	return &Loader{
		Logger: logger,
		dirs:   func() (Dirs, error) { return dirs, nil },
		getenv: getenv,
	}
}

// Load resolves the config file and returns the settings it describes.
// The file is looked up at path, then $MODUP_CONFIG, then the user config directory.
// Only a missing default file is tolerated.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	dirs, err := l.dirs()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	explicit := true
	if path == "" {
		path = l.getenv(domain.ConfigEnvVar)
	}
	if path == "" {
		explicit = false
		path = filepath.Join(dirs.ConfigHome, domain.ConfigDirName, domain.ConfigFileName)
	}

	if !explicit {
		if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
			return toSettings(&File{}, "", dirs)
		}
	}

	var file File
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	for name, raw := range file.Repositories {
		if strings.HasPrefix(strings.ToLower(raw), "http://") {
			l.Logger.Warn(fmt.Sprintf("repository %s uses plain http", name))
		}
	}

	return toSettings(&file, filepath.Dir(path), dirs)
}

func toSettings(file *File, baseDir string, dirs Dirs) (*domain.Settings, error) {
	s := &domain.Settings{
		ModulePath:        resolvePath(baseDir, file.ModulePath, domain.DefaultModulePath(dirs.DataHome)),
		DefaultRepository: file.DefaultRepository,
		ProtectedModules:  file.ProtectedModules,
		CacheDir:          resolvePath(baseDir, file.Cache.Dir, domain.DefaultCachePath(dirs.CacheHome)),
		CacheTTL:          domain.DefaultCacheTTL,
		HTTPTimeout:       domain.DefaultHTTPTimeout,
		HTTPRetries:       domain.DefaultHTTPRetries,
	}

	if s.DefaultRepository == "" {
		s.DefaultRepository = domain.DefaultRepositoryName
	}

	repos, err := buildRepositories(file.Repositories)
	if err != nil {
		return nil, err
	}
	s.Repositories = repos

	if _, err := s.Repository(""); err != nil {
		return nil, err
	}

	if file.Cache.TTL != "" {
		if s.CacheTTL, err = parseDuration("cache.ttl", file.Cache.TTL); err != nil {
			return nil, err
		}
	}

	if file.HTTP.Timeout != "" {
		if s.HTTPTimeout, err = parseDuration("http.timeout", file.HTTP.Timeout); err != nil {
			return nil, err
		}
	}

	if file.HTTP.Retries != nil {
		if *file.HTTP.Retries < 0 {
			return nil, zerr.With(zerr.With(domain.ErrConfigInvalid, "field", "http.retries"), "value", *file.HTTP.Retries)
		}
		s.HTTPRetries = *file.HTTP.Retries
	}

	return s, nil
}

// buildRepositories merges the configured feeds over the built-in default, sorted by name.
func buildRepositories(configured map[string]string) ([]domain.Repository, error) {
	merged := map[string]string{domain.DefaultRepositoryName: domain.DefaultRepositoryURL}
	for name, raw := range configured {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "file") {
			return nil, zerr.With(zerr.With(domain.ErrUnsupportedRepository, "repository", name), "url", raw)
		}
		for existing := range merged {
			if strings.EqualFold(existing, name) {
				delete(merged, existing)
			}
		}
		merged[name] = strings.TrimRight(raw, "/")
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	slices.Sort(names)

	repos := make([]domain.Repository, 0, len(names))
	for _, name := range names {
		repos = append(repos, domain.Repository{Name: name, URL: merged[name]})
	}
	return repos, nil
}

func parseDuration(field, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, zerr.With(zerr.With(domain.ErrConfigInvalid, "field", field), "value", raw)
	}
	return d, nil
}

// resolvePath makes p absolute against baseDir and falls back to def when p is empty.
func resolvePath(baseDir, p, def string) string {
	switch {
	case p == "":
		return def
	case strings.HasPrefix(p, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
		return p
	case filepath.IsAbs(p) || baseDir == "":
		return filepath.Clean(p)
	default:
		return filepath.Join(baseDir, p)
	}
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from the operator
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

func userDirs() (Dirs, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return Dirs{}, err
	}
	cacheHome, err := os.UserCacheDir()
	if err != nil {
		return Dirs{}, err
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Dirs{}, zerr.Wrap(err, "failed to resolve data directory")
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return Dirs{ConfigHome: configHome, CacheHome: cacheHome, DataHome: dataHome}, nil
}
