// Package storage holds the upload file stores. Every stored file gets a
// collision-free random name; the original filename is discarded apart from
// its extension.
package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
)

// Store saves an uploaded byte stream and returns the stored filename plus
// the public retrieval URL.
type Store interface {
	Save(ctx context.Context, r io.Reader, ext string) (filename string, url string, err error)
}

// uniqueFilename returns a random, globally-unique name keeping only the
// original extension.
func uniqueFilename(ext string) string {
	name := strings.ReplaceAll(uuid.New().String(), "-", "")
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		return name
	}
	return name + "." + ext
}

// DiskStore writes uploads to a local directory served as static files.
type DiskStore struct {
	dir        string
	publicPath string
}

func NewDiskStore(dir, publicPath string) *DiskStore {
	return &DiskStore{dir: dir, publicPath: publicPath}
}

// Dir returns the directory uploads are written to.
func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) Save(_ context.Context, r io.Reader, ext string) (string, string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", "", errs.NewStorageError("create upload directory", err)
	}

	filename := uniqueFilename(ext)
	location := filepath.Join(s.dir, filename)

	f, err := os.Create(location)
	if err != nil {
		return "", "", errs.NewStorageError("create upload file", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(location)
		return "", "", errs.NewStorageError("write upload file", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(location)
		return "", "", errs.NewStorageError("write upload file", err)
	}

	return filename, path.Join(s.publicPath, filename), nil
}
