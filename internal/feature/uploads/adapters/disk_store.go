// Package adapters provides the filesystem implementation of the upload store.
package adapters

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"realty_backend/internal/feature/uploads/usecase"
)

// DiskStore stores uploaded images under root, one directory per property.
type DiskStore struct {
	root string
}

// Compile-time check to ensure DiskStore implements FileStore.
var _ usecase.FileStore = (*DiskStore)(nil)

// NewDiskStore creates a DiskStore rooted at the given directory.
func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

// List returns the filenames present in the directory.
// A directory that does not exist yet lists as empty.
func (s *DiskStore) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Save writes the reader's content to dir/name, creating dir as needed.
// A partially written file is removed on error.
func (s *DiskStore) Save(dir, name string, r io.Reader) error {
	dirPath := filepath.Join(s.root, dir)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst := filepath.Join(dirPath, name)
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return err
	}
	return f.Close()
}

// Remove deletes dir/name.
func (s *DiskStore) Remove(dir, name string) error {
	return os.Remove(filepath.Join(s.root, dir, name))
}

// RemoveAll deletes the whole per-property directory.
func (s *DiskStore) RemoveAll(dir string) error {
	if dir == "" || dir == "." {
		return fmt.Errorf("refusing to remove upload root")
	}
	return os.RemoveAll(filepath.Join(s.root, dir))
}
