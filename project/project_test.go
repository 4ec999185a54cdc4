package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeMarker(t *testing.T, dir string) {
	t.Helper()
	path := filepath.Join(dir, Marker)
	if err := os.WriteFile(path, []byte(`{"packageDirectories":[{"path":"force-app","default":true}]}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestFindRoot(t *testing.T) {
	tmpDir := t.TempDir()
	writeMarker(t, tmpDir)

	// Find from nested directory
	nested := filepath.Join(tmpDir, "force-app", "main", "default")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	root, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	if root != tmpDir {
		t.Errorf("FindRoot() = %q, want %q", root, tmpDir)
	}
}

func TestFindRoot_AtRoot(t *testing.T) {
	tmpDir := t.TempDir()
	writeMarker(t, tmpDir)

	root, err := FindRoot(tmpDir)
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	if root != tmpDir {
		t.Errorf("FindRoot() = %q, want %q", root, tmpDir)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := FindRoot(tmpDir)
	if !errors.Is(err, ErrNoWorkspace) {
		t.Errorf("FindRoot() error = %v, want ErrNoWorkspace", err)
	}
}

func TestFindRoot_MarkerMustBeFile(t *testing.T) {
	tmpDir := t.TempDir()

	// A directory named like the marker does not count.
	if err := os.MkdirAll(filepath.Join(tmpDir, Marker), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	_, err := FindRoot(tmpDir)
	if !errors.Is(err, ErrNoWorkspace) {
		t.Errorf("FindRoot() error = %v, want ErrNoWorkspace", err)
	}
}

func TestFindRoot_EmptyStartDir(t *testing.T) {
	tmpDir := t.TempDir()
	writeMarker(t, tmpDir)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	root, err := FindRoot("")
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	// Compare resolved paths; tmpDir may be behind a symlink on some systems.
	want, _ := filepath.EvalSymlinks(tmpDir)
	got, _ := filepath.EvalSymlinks(root)
	if got != want {
		t.Errorf("FindRoot() = %q, want %q", got, want)
	}
}

func TestInWorkspace(t *testing.T) {
	tmpDir := t.TempDir()
	if InWorkspace(tmpDir) {
		t.Error("InWorkspace() = true, want false")
	}

	writeMarker(t, tmpDir)
	if !InWorkspace(tmpDir) {
		t.Error("InWorkspace() = false, want true")
	}
}
