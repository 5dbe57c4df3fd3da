package installer

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/zerr"
)

// extract unpacks the module content of the package at pkgPath into dest.
func extract(ctx context.Context, pkgPath, dest string) error {
	r, err := zip.OpenReader(pkgPath)
	if errors.Is(err, zip.ErrInsecurePath) {
		_ = r.Close()
		return domain.ErrUnsafeArchiveEntry
	}
	if err != nil {
		return zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := f.Name
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}
		if isPackagingMetadata(name) {
			continue
		}

		target, err := entryPath(dest, name)
		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() || strings.HasSuffix(name, "/") {
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.Wrap(err, domain.ErrExtractFailed.Error())
			}
			continue
		}

		if err := writeEntry(f, target); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "entry", name)
		}
	}

	return nil
}

// entryPath resolves name below dest and rejects entries that would escape it.
func entryPath(dest, name string) (string, error) {
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") || strings.Contains(name, `\`) {
		return "", zerr.With(domain.ErrUnsafeArchiveEntry, "entry", name)
	}

	target := filepath.Join(dest, filepath.FromSlash(name))
	rel, err := filepath.Rel(dest, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(domain.ErrUnsafeArchiveEntry, "entry", name)
	}
	return target, nil
}

func writeEntry(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	//nolint:gosec // target is checked by entryPath
	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return err
	}

	//nolint:gosec // package size is bounded by the repository
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}
