// Package compression opens table resources that may be stored plain or
// compressed with xz, gzip or bzip2.
package compression

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/ulikunitz/xz"
)

// DefaultMaxSize caps the decompressed size of a single resource.
const DefaultMaxSize int64 = 16 * 1024 * 1024

// Suffixes lists the recognised resource variants in lookup order.
var Suffixes = []string{"", ".xz", ".gz", ".bz2"}

// Resource is an opened, decompressing resource.
type Resource struct {
	io.Reader

	// Name is the path of the file that was actually opened.
	Name string

	file   fs.File
	closer io.Closer
}

// Close releases the decoder and the underlying file.
func (r *Resource) Close() error {
	var errs []error
	if r.closer != nil {
		errs = append(errs, r.closer.Close())
	}
	errs = append(errs, r.file.Close())
	return errors.Join(errs...)
}

// Open opens the first existing variant of name in fsys, trying the plain
// file first and then each compressed suffix. At most maxSize decompressed
// bytes can be read; maxSize <= 0 selects DefaultMaxSize.
//
// If no variant exists the returned error wraps fs.ErrNotExist.
func Open(fsys fs.FS, name string, maxSize int64) (*Resource, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	for _, suffix := range Suffixes {
		path := name + suffix
		f, err := fsys.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}

		r, closer, err := decoder(f, path)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return &Resource{
			Reader: NewLimitedReader(r, maxSize),
			Name:   path,
			file:   f,
			closer: closer,
		}, nil
	}

	return nil, fmt.Errorf("%s: no plain or compressed variant found: %w", name, fs.ErrNotExist)
}

// decoder wraps r with the decompressor matching the suffix of path.
func decoder(r io.Reader, path string) (io.Reader, io.Closer, error) {
	switch {
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader for %s: %w", path, err)
		}
		return xzr, nil, nil
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader for %s: %w", path, err)
		}
		return gzr, gzr, nil
	case strings.HasSuffix(path, ".bz2"):
		return bzip2.NewReader(r), nil, nil
	default:
		return r, nil, nil
	}
}
