package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// workDir is a scratch directory for one run's rendered atlases, one
// subdirectory per heuristic, cleaned up unless the caller asked to keep
// it around for inspection.
type workDir struct {
	root string
	keep bool
}

// newWorkDir creates a fresh temporary directory under os.TempDir, named
// uniquely per run so concurrent invocations never collide.
func newWorkDir(keep bool) (*workDir, error) {
	name := "atlaspack-" + uuid.NewString()
	root := filepath.Join(os.TempDir(), name)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	return &workDir{root: root, keep: keep}, nil
}

// heuristicDir returns (creating if needed) the subdirectory a single
// heuristic's rendered atlases should be written to.
func (w *workDir) heuristicDir(name string) (string, error) {
	dir := filepath.Join(w.root, sanitize(name))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create heuristic dir %s: %w", dir, err)
	}
	return dir, nil
}

// close removes the work directory unless keep was requested.
func (w *workDir) close() {
	if w.keep {
		fmt.Fprintf(os.Stderr, "atlaspack: kept work dir %s\n", w.root)
		return
	}
	os.RemoveAll(w.root)
}

func sanitize(name string) string {
	return strings.ReplaceAll(name, "/", "_")
}

// vim: ts=4
