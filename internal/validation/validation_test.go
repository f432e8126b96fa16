package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"fetcharr/internal/validation"
)

// TestValidateFile runs checks for file validation.
func TestValidateFile(t *testing.T) {
	tmp := t.TempDir()

	path := filepath.Join(tmp, "config.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	info, err := validation.ValidateFile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if info == nil {
		t.Fatalf("expected file info, got nil")
	}

	// Missing file
	if _, err := validation.ValidateFile(filepath.Join(tmp, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file, got nil")
	}

	// Directory instead of file
	if _, err := validation.ValidateFile(tmp); err == nil {
		t.Fatalf("expected error for directory path, got nil")
	}
}

// TestValidateDirectory runs checks for directory validation.
func TestValidateDirectory(t *testing.T) {
	tmp := t.TempDir()

	info, err := validation.ValidateDirectory(tmp, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if info == nil {
		t.Fatalf("expected file info, got nil")
	}

	// Missing, no create
	missing := filepath.Join(tmp, "nope")
	if _, err := validation.ValidateDirectory(missing, false); err == nil {
		t.Fatalf("expected error for missing directory, got nil")
	}

	// Missing, create it
	if _, err := validation.ValidateDirectory(missing, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(missing); statErr != nil {
		t.Fatalf("directory was not created")
	}

	// File in the way
	filePath := filepath.Join(tmp, "file")
	if err := os.WriteFile(filePath, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := validation.ValidateDirectory(filePath, true); err == nil {
		t.Fatalf("expected error for file path, got nil")
	}
}
