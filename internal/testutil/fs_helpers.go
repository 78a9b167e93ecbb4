package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateSoundsDir creates a temporary sound catalog holding one empty file per name.
// Names are used verbatim, so they should carry their extension.
// Cleanup is handled via t.TempDir.
func CreateSoundsDir(t *testing.T, files ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("FORM"), 0o644); err != nil {
			t.Fatalf("failed to create sound file %s: %v", name, err)
		}
	}
	return dir
}

// WriteConfigFile writes content to name inside a temporary directory and returns the path.
func WriteConfigFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}
