// Package testutil provides filesystem fixtures for testing
// configuration resolution: temporary project workspaces, settings
// file writers, and scoped environment variables.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/sfdxkit/envvars"
	"github.com/randalmurphal/sfdxkit/project"
)

// TempProject creates a temporary project workspace containing the
// sfdx-project.json marker. Returns the workspace root, cleaned up
// automatically when the test ends.
func TempProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	marker := filepath.Join(root, project.Marker)
	if err := os.WriteFile(marker, []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("failed to create project marker %s: %v", marker, err)
	}

	return root
}

// NestedDir creates a directory chain under root and returns the
// deepest directory. Useful for testing upward workspace discovery.
func NestedDir(t *testing.T, root string, parts ...string) string {
	t.Helper()

	dir := filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create nested directory %s: %v", dir, err)
	}

	return dir
}

// WriteJSON marshals contents and writes the file, creating parent
// directories as needed.
func WriteJSON(t *testing.T, path string, contents map[string]any) {
	t.Helper()

	data, err := json.MarshalIndent(contents, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal JSON for %s: %v", path, err)
	}
	WriteFileString(t, path, string(data)+"\n")
}

// WriteFileString writes a file with the given content, creating
// parent directories as needed. Useful for malformed-file fixtures
// that WriteJSON cannot produce.
func WriteFileString(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// WriteLocalConfig writes a project-scoped settings file under the
// workspace root and returns its path.
func WriteLocalConfig(t *testing.T, root string, contents map[string]any) string {
	t.Helper()

	path := filepath.Join(root, ".sfdx", "sfdx-config.json")
	WriteJSON(t, path, contents)
	return path
}

// WriteGlobalConfig writes a global settings file under the given
// config directory and returns its path.
func WriteGlobalConfig(t *testing.T, dir string, contents map[string]any) string {
	t.Helper()

	path := filepath.Join(dir, "sfdx-config.json")
	WriteJSON(t, path, contents)
	return path
}

// SetConfigEnv sets the SFDX_ environment variable derived from a
// config key for the duration of the test.
func SetConfigEnv(t *testing.T, key, value string) {
	t.Helper()
	t.Setenv(envvars.Name(key), value)
}
