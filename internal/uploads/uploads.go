// Package uploads keeps files uploaded during a session on local disk and
// hands back opaque references to them.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("invalid upload name")

// Storage saves uploaded images and reopens them by name.
type Storage interface {
	Save(r io.Reader, filename string) (string, error)
	Open(name string) (io.ReadSeekCloser, error)
}

type LocalStorage struct {
	basePath string
	create   func(name string) (io.WriteCloser, error)
}

func createFile(name string) (io.WriteCloser, error) { return os.Create(name) }

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, create: createFile}, nil
}

// Save copies r into a new uuid-named file keeping the extension of
// filename, and returns the stored name. A file that cannot be fully
// written and closed is removed and no name is returned.
func (ls *LocalStorage) Save(r io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".img"
	}

	name := uuid.New().String() + ext
	fullPath := filepath.Join(ls.basePath, name)

	dst, err := ls.create(fullPath)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("writing file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("closing file: %w", err)
	}

	return name, nil
}

func (ls *LocalStorage) Open(name string) (io.ReadSeekCloser, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	f, err := os.Open(filepath.Join(ls.basePath, name))
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return f, nil
}

// Check verifies the upload directory is still writable.
func (ls *LocalStorage) Check(_ context.Context) error {
	f, err := os.CreateTemp(ls.basePath, ".probe-*")
	if err != nil {
		return fmt.Errorf("probing upload directory: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
