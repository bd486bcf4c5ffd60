// Package projectroot locates the repository root so layout contract
// tests can run from any package directory.
package projectroot

import (
	"fmt"
	"os"
	"path/filepath"
)

// Find walks up from start until it reaches the directory containing
// go.mod and returns its absolute path.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod above %s", start)
		}
		dir = parent
	}
}
