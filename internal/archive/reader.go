// Package archive writes and restores corpus snapshots.
// Snapshots are tar.xz; tar.gz is also accepted when reading.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/webbible/internal/validation"
)

// Reader wraps a tar.Reader with automatic decompression handling.
type Reader struct {
	*tar.Reader
	file         *os.File
	decompressor io.Closer
}

// NewReader creates a new archive reader for the given path.
// It automatically detects and handles .tar.gz and .tar.xz compression.
func NewReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	var reader io.Reader = f
	var decompressor io.Closer

	switch {
	case strings.HasSuffix(path, ".tar.xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		reader = xzr
	case strings.HasSuffix(path, ".tar.gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		reader = gzr
		decompressor = gzr
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported archive format: %s", path)
	}

	return &Reader{
		Reader:       tar.NewReader(reader),
		file:         f,
		decompressor: decompressor,
	}, nil
}

// Close closes the archive reader and any underlying decompressors.
func (r *Reader) Close() error {
	var errs []error
	if r.decompressor != nil {
		if err := r.decompressor.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := r.file.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Visitor is a callback function for iterating archive entries.
// Return true to stop iteration, false to continue.
type Visitor func(header *tar.Header, content io.Reader) (stop bool, err error)

// Iterate walks through all entries in the archive, calling the visitor for each.
func (r *Reader) Iterate(visitor Visitor) error {
	for {
		header, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read header: %w", err)
		}

		stop, err := visitor(header, r)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}

// IterateSnapshot opens an archive and iterates through its entries.
func IterateSnapshot(path string, visitor Visitor) error {
	r, err := NewReader(path)
	if err != nil {
		return err
	}
	defer r.Close()
	return r.Iterate(visitor)
}

// List returns the regular-file names of a snapshot in archive order,
// rejecting any entry that is not a plain filename.
func List(archivePath string) ([]string, error) {
	var names []string
	err := IterateSnapshot(archivePath, func(header *tar.Header, _ io.Reader) (bool, error) {
		if header.Typeflag != tar.TypeReg {
			return false, nil
		}
		if err := validation.ValidateFilename(header.Name); err != nil {
			return true, fmt.Errorf("unsafe entry %q: %w", header.Name, err)
		}
		names = append(names, header.Name)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Restore writes every regular file of the archive into dir, overwriting
// existing files, and returns the restored names in archive order.
// Snapshots are flat; an entry that is not a plain filename is rejected.
func Restore(archivePath, dir string) ([]string, error) {
	var names []string
	err := IterateSnapshot(archivePath, func(header *tar.Header, r io.Reader) (bool, error) {
		if header.Typeflag != tar.TypeReg {
			return false, nil
		}
		name := header.Name
		if err := validation.ValidateFilename(name); err != nil {
			return true, fmt.Errorf("unsafe entry %q: %w", name, err)
		}

		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return true, err
		}
		if _, err := io.Copy(f, r); err != nil {
			f.Close()
			return true, err
		}
		if err := f.Close(); err != nil {
			return true, err
		}
		names = append(names, name)
		return false, nil
	})
	return names, err
}
