// Package archive reads resources packed into zip archives.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// ErrUnsafePath is returned for entries which could escape extraction
// directory.
var ErrUnsafePath = errors.New("unsafe path (absolute or contains path traversal)")

// WalkFunc is called for every file in archive visited by Walk. If an error is
// returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// IsArchive reports whether path names a zip archive.
func IsArchive(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".zip")
}

// Walk calls walkFn for all files in the archive with names starting with
// prefix. Directories are skipped, archive with unsafe entry is rejected
// as a whole.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !isSafePath(f.Name) {
			return fmt.Errorf("zip entry %q: %w", f.Name, ErrUnsafePath)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(f.Name, prefix) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadFile returns content of the named entry. Name uses forward slashes,
// leading "./" is ignored.
func ReadFile(archive, name string) ([]byte, error) {
	name = path.Clean(filepath.ToSlash(name))
	if !isSafePath(name) {
		return nil, fmt.Errorf("zip entry %q: %w", name, ErrUnsafePath)
	}

	var (
		data  []byte
		found bool
	)
	err := Walk(archive, name, func(_ string, f *zip.File) error {
		if f.Name != name {
			return nil
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		if data, err = io.ReadAll(rc); err != nil {
			return err
		}
		found = true
		return fs.SkipAll
	})
	if err != nil && !errors.Is(err, fs.SkipAll) {
		return nil, fmt.Errorf("unable to read %q from %s: %w", name, archive, err)
	}
	if !found {
		return nil, fmt.Errorf("%q in %s: %w", name, archive, fs.ErrNotExist)
	}
	return data, nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
