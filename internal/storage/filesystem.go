package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Filesystem stores objects as files under a base directory. The returned
// location is the configured base joined with the key, so it resolves to the
// stored file from the process working directory.
type Filesystem struct {
	root     string
	basePath string
}

// NewFilesystem creates basePath if needed. Locations keep basePath in the
// form it was configured; writes go through its absolute form.
func NewFilesystem(basePath string) (*Filesystem, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("base_path required")
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base_path: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create base_path: %w", err)
	}
	return &Filesystem{root: filepath.Clean(basePath), basePath: abs}, nil
}

// BasePath returns the absolute storage root.
func (f *Filesystem) BasePath() string { return f.basePath }

// Put writes data atomically: a uniquely named temp file in the target
// directory is renamed over the target, so readers never observe a partial
// image and concurrent writers of one key never share a temp file. An
// existing file is replaced.
func (f *Filesystem) Put(ctx context.Context, key string, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	full, clean, err := f.fullPath(key)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	if err := writeAtomic(dir, full, data); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join(f.root, clean)), nil
}

// Close is a no-op.
func (f *Filesystem) Close() error { return nil }

func writeAtomic(dir, full string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("close temp file: %w", err)
	}
	// CreateTemp opens with 0600.
	if err := os.Chmod(name, 0o644); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(name, full); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (f *Filesystem) fullPath(key string) (full, clean string, err error) {
	if strings.TrimSpace(key) == "" || filepath.IsAbs(key) {
		return "", "", ErrInvalidKey
	}
	clean = filepath.Clean(filepath.FromSlash(key))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", "", ErrInvalidKey
	}
	full = filepath.Join(f.basePath, clean)
	if !strings.HasPrefix(full, f.basePath+string(filepath.Separator)) {
		return "", "", ErrInvalidKey
	}
	return full, clean, nil
}
