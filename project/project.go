// Package project locates Salesforce DX project workspaces.
//
// A workspace is any directory tree whose root contains an
// sfdx-project.json file. Discovery walks upward from a starting
// directory, the same way git finds its repository root.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Marker is the filename that identifies a project root.
const Marker = "sfdx-project.json"

// ErrNoWorkspace indicates no project root was found above the
// starting directory. Callers that can operate without a local
// workspace should treat this as an expected condition.
var ErrNoWorkspace = errors.New("no project workspace found")

// FindRoot walks upward from startDir until it finds a directory
// containing sfdx-project.json and returns that directory.
// An empty startDir means the current working directory.
// It returns ErrNoWorkspace when the filesystem root is reached
// without finding a marker.
func FindRoot(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	for {
		marker := filepath.Join(dir, Marker)
		if info, err := os.Stat(marker); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached root
		}
		dir = parent
	}

	return "", ErrNoWorkspace
}

// InWorkspace reports whether startDir is inside a project workspace.
func InWorkspace(startDir string) bool {
	_, err := FindRoot(startDir)
	return err == nil
}
