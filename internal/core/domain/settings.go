package domain

import (
	"strings"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultCacheTTL is how long repository version listings are reused.
	DefaultCacheTTL = time.Hour

	// DefaultHTTPTimeout bounds a single repository request.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultHTTPRetries is the number of retries after a failed repository request.
	DefaultHTTPRetries = 3
)

// Settings is the resolved runtime configuration.
type Settings struct {
	ModulePath        string
	DefaultRepository string
	Repositories      []Repository
	ProtectedModules  []string
	CacheDir          string
	CacheTTL          time.Duration
	HTTPTimeout       time.Duration
	HTTPRetries       int
}

// Repository resolves a repository by name or URL.
// An empty ref selects the default repository. A ref containing "://" is used as a URL directly.
func (s *Settings) Repository(ref string) (Repository, error) {
	if ref == "" {
		ref = s.DefaultRepository
	}
	if strings.Contains(ref, "://") {
		return Repository{Name: ref, URL: ref}, nil
	}
	for _, r := range s.Repositories {
		if strings.EqualFold(r.Name, ref) {
			return r, nil
		}
	}
	return Repository{}, zerr.With(ErrUnknownRepository, "repository", ref)
}
