// Package fileio is the file persistence collaborator for the editor.
// It owns raw reads and writes; all document and workspace state stays
// in memory and is never touched by this package.
package fileio

import (
	"os"
	"path/filepath"

	"github.com/trine-editor/trine/internal/errors"
	"github.com/trine-editor/trine/internal/logger"
)

// Read loads the full content of the file at path as UTF-8 text.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("fileio: read %s failed: %v", path, err)
		return "", errors.FileReadFailed(path, err)
	}
	return string(data), nil
}

// Write stores content to the file at path, creating it if necessary.
// Parent directories are not created; a save into a missing directory fails.
func Write(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		logger.Error("fileio: write %s failed: %v", path, err)
		return errors.FileWriteFailed(path, err)
	}
	return nil
}

// Exists reports whether path currently exists on disk.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CreateFolder creates a new directory under parent. It fails if the
// directory already exists.
func CreateFolder(parent, name string) error {
	path := filepath.Join(parent, name)
	if err := os.Mkdir(path, 0755); err != nil {
		logger.Error("fileio: mkdir %s failed: %v", path, err)
		return errors.E(errors.Op("fileio.CreateFolder"), errors.KindIO, "could not create folder "+name, err)
	}
	return nil
}
