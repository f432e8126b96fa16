// Package validation checks filesystem inputs before they are used.
package validation

import (
	"fmt"
	"os"

	"fetcharr/internal/utils/logging"
)

// ValidateFile validates that the file exists and is not a directory.
func ValidateFile(path string) (os.FileInfo, error) {
	logging.D(3, "Statting file %q...", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed check for file path %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path %q is a directory, should be a file", path)
	}
	return info, nil
}

// ValidateDirectory validates that the directory exists, else creates it
// if desired.
func ValidateDirectory(dir string, createIfNotFound bool) (os.FileInfo, error) {
	logging.D(3, "Statting directory %q...", dir)

	info, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) || !createIfNotFound {
			return nil, fmt.Errorf("failed check for directory %q: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
		if info, err = os.Stat(dir); err != nil {
			return nil, err
		}
		return info, nil
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path %q exists but is not a directory", dir)
	}
	return info, nil
}
