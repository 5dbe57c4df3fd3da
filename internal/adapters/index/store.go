// Package index records which modules were installed from a repository.
package index

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.InstallIndex with one YAML file per module
// under {root}/.modup/installed.
type Store struct{}

// NewStore creates a new install index store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the install record for name, or nil if none exists.
func (s *Store) Get(root, name string) (*domain.InstallRecord, error) {
	filename := s.filename(root, name)
	//nolint:gosec // Path is constructed from the module root and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexReadFailed.Error()), "module", name)
	}

	var rec domain.InstallRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexUnmarshalFailed.Error()), "module", name)
	}

	return &rec, nil
}

// Put stores rec, replacing any previous record for the module.
// The file is written to a temporary name and renamed into place.
func (s *Store) Put(root string, rec domain.InstallRecord) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return zerr.Wrap(err, domain.ErrIndexMarshalFailed.Error())
	}

	filename := s.filename(root, rec.Name)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrIndexCreateFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, "record-*.tmp")
	if err != nil {
		return zerr.Wrap(err, domain.ErrIndexWriteFailed.Error())
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrIndexWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrIndexWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrIndexWriteFailed.Error())
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIndexWriteFailed.Error()), "module", rec.Name)
	}

	return nil
}

// Delete removes the record for name. A missing record is not an error.
func (s *Store) Delete(root, name string) error {
	err := os.Remove(s.filename(root, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrIndexWriteFailed.Error()), "module", name)
	}
	return nil
}

// filename hashes the lowercased name so lookups are case-insensitive.
func (s *Store) filename(root, name string) string {
	sum := xxhash.Sum64String(strings.ToLower(name))
	return filepath.Join(domain.IndexPath(root), strconv.FormatUint(sum, 16)+".yaml")
}
