// Package scratch provides scoped temporary storage for decode operations.
//
// Every pipeline run stages clip bytes on disk before decoding. A scratch
// directory is acquired per operation and released with a single deferred
// call, so no exit path can leak entries.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Provider hands out scratch directories. The pipelines take it as a
// parameter so tests can observe acquisition and release.
type Provider interface {
	Acquire() (*Dir, error)
}

// Dir is a temporary directory scoped to a single operation.
type Dir struct {
	path string
}

// TempDir is the default Provider, backed by the system temp directory.
type TempDir struct{}

// Acquire creates a fresh scratch directory.
func (TempDir) Acquire() (*Dir, error) {
	path, err := os.MkdirTemp("", "silencios-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return &Dir{path: path}, nil
}

// Entry returns a fresh unique file path inside the directory with the
// given extension. The file itself is not created.
func (d *Dir) Entry(ext string) string {
	return filepath.Join(d.path, uuid.NewString()+ext)
}

// Path returns the directory path.
func (d *Dir) Path() string { return d.path }

// Released reports whether the directory has already been removed.
func (d *Dir) Released() bool { return d == nil || d.path == "" }

// Release deletes the directory and every entry in it. Safe to call from a
// defer on error paths; removal errors are dropped because the operation's
// original failure takes precedence.
func (d *Dir) Release() {
	if d.Released() {
		return
	}
	_ = os.RemoveAll(d.path)
	d.path = ""
}
