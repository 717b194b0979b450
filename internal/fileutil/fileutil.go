// Package fileutil provides file helpers for the batch drivers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes data to path through a temporary file in the same
// directory, so a reader never sees a partially written page.
func WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("failed to set mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Replace writes data to newPath and removes oldPath. The old file is removed
// first, so on case-insensitive filesystems a rename such as JOB01.htm to
// Job01.htm does not delete the page it just wrote.
func Replace(oldPath, newPath string, data []byte) error {
	if oldPath != newPath {
		if err := os.Remove(oldPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", filepath.Base(oldPath), err)
		}
	}
	return WriteFile(newPath, data)
}
