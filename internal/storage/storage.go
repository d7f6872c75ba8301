// Package storage provides the file system operations used to read and
// replace solution descriptors.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// tempPattern names temp files created next to the file being replaced.
const tempPattern = ".slnstart-tmp-*"

// FS abstracts the file operations the descriptor writer needs.
type FS interface {
	// Resolve follows symlinks and returns the path of the real file.
	Resolve(path string) (string, error)

	// Stat returns file info for path.
	Stat(path string) (os.FileInfo, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// AtomicWrite replaces path with data using temp file + rename.
	AtomicWrite(path string, data []byte, perm os.FileMode) error
}

// OSFS implements FS on the real file system.
type OSFS struct{}

// NewOSFS creates a new OSFS.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Resolve follows symlinks and returns the path of the real file.
func (fs *OSFS) Resolve(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// Stat returns file info for path.
func (fs *OSFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire contents of a file.
func (fs *OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// AtomicWrite replaces path with data. The temp file lives in the same
// directory as path so the final rename never crosses file systems. On any
// failure the temp file is removed and path is left untouched.
func (fs *OSFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	committed = true

	return nil
}
