package ui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscardPlaceholder(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.mp4")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	discardPlaceholder(empty, testLogger())
	if _, err := os.Stat(empty); !os.IsNotExist(err) {
		t.Errorf("Expected empty placeholder to be removed, got %v", err)
	}

	full := filepath.Join(dir, "full.mp4")
	if err := os.WriteFile(full, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	discardPlaceholder(full, testLogger())
	if _, err := os.Stat(full); err != nil {
		t.Errorf("Expected non-empty file to be kept, got %v", err)
	}

	// Missing files are ignored
	discardPlaceholder(filepath.Join(dir, "missing.mp4"), testLogger())
}
