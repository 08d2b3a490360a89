package fileutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/harness/yrm/util/common/errors"
)

// validatePath checks that a path is usable for a read or write.
func validatePath(path string) error {
	if path == "" {
		return errors.NewValidationError("path", "path cannot be empty")
	}
	if strings.ContainsAny(path, "<>|?*") {
		return errors.NewValidationError("path", "path contains invalid characters")
	}
	return nil
}

// ReadFile reads the entire file and returns its contents.
// It validates the path and checks if the file exists and is readable.
func ReadFile(path string) ([]byte, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.NewFileError(path, "stat", err)
	}
	if info.IsDir() {
		return nil, errors.NewValidationError("path", "path is a directory, expected a file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewFileError(path, "read", err)
	}
	return data, nil
}

// WriteFile replaces the contents of path with data, creating the parent
// directory if needed.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := validatePath(path); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewFileError(path, "create_dir", err)
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return errors.NewFileError(path, "write", err)
	}
	return nil
}

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
