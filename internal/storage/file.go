package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const filePerm = 0o644

var ErrInvalidKey = errors.New("invalid storage key")

// File stores every key as <dir>/<key>.json.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &File{dir: dir}, nil
}

func (f *File) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return filepath.Join(f.dir, key+".json"), nil
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	path, err := f.path(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(data), true, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}

	return f.replace(path, []byte(value))
}

func (f *File) Close() error {
	return nil
}

// replace stages data in a hidden sibling of path and renames it into place,
// so readers see either the previous content or the new one.
// Staging names start with a dot and cannot collide with valid keys.
func (f *File) replace(path string, data []byte) (err error) {
	staged, err := os.CreateTemp(f.dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			os.Remove(staged.Name())
		}
	}()

	_, writeErr := staged.Write(data)
	if err = errors.Join(writeErr, staged.Chmod(filePerm), staged.Sync(), staged.Close()); err != nil {
		return fmt.Errorf("failed to stage %s: %w", path, err)
	}

	if err = os.Rename(staged.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
