package registry

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/zerr"
)

// cacheEntry is one cached version listing.
type cacheEntry struct {
	Repository string    `json:"repository"`
	Module     string    `json:"module"`
	Versions   []string  `json:"versions"`
	FetchedAt  time.Time `json:"fetchedAt"`
}

// cachePath returns the cache file for a (repository, module id) pair.
func cachePath(dir, repoURL, id string) string {
	sum := xxhash.Sum64String(repoURL + "\x00" + id)
	return filepath.Join(dir, strconv.FormatUint(sum, 16)+".json")
}

func loadCache(path string, ttl time.Duration, now time.Time) ([]string, error) {
	//nolint:gosec // Path is constructed from the cache directory and a hashed filename
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrCacheReadFailed
		}
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	if now.Sub(entry.FetchedAt) > ttl {
		return nil, domain.ErrCacheExpired
	}
	return entry.Versions, nil
}

func saveCache(path string, entry *cacheEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, "registry-cache-*.json")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}
