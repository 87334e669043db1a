package fs

import (
	"time"

	"github.com/spf13/afero"
)

// FileSystem extends afero.Fs with the file-level operations extops performs.
type FileSystem interface {
	afero.Fs

	// Copy copies the regular file src to dst, preserving its mode.
	// An existing dst is truncated; callers check for conflicts first.
	Copy(src, dst string) error

	// Move relocates src to dst. Falls back to copy and remove when a
	// plain rename is not possible (e.g. across devices).
	Move(src, dst string) error

	// Times returns the timestamps known for a path.
	Times(name string) (Times, error)
}

// Times holds the timestamps reported for a file.
// Created is only meaningful when HasCreated is true.
type Times struct {
	Modified   time.Time
	Created    time.Time
	HasCreated bool
}

// NewReal creates a FileSystem that performs actual filesystem operations.
func NewReal() FileSystem {
	return &RealFileSystem{
		Fs: afero.NewOsFs(),
	}
}

// NewDryRun creates a FileSystem that never modifies the real filesystem.
// Uses CopyOnWriteFs so later operations in the same run observe earlier ones
// (a simulated copy shows up in the destination listing).
func NewDryRun() FileSystem {
	base := afero.NewReadOnlyFs(afero.NewOsFs())
	layer := afero.NewMemMapFs()
	cow := afero.NewCopyOnWriteFs(base, layer)
	return &DryRunFileSystem{Fs: cow}
}

// NewMem creates an in-memory FileSystem for testing.
func NewMem() FileSystem {
	return &MemFileSystem{Fs: afero.NewMemMapFs()}
}

// NewMemTest returns a MemFileSystem for testing with access to Must* helpers.
func NewMemTest() *MemFileSystem {
	return &MemFileSystem{Fs: afero.NewMemMapFs()}
}

// statTimes builds Times from a plain Stat; used where no birth time is available.
func statTimes(afs afero.Fs, name string) (Times, error) {
	info, err := afs.Stat(name)
	if err != nil {
		return Times{}, err
	}
	return Times{Modified: info.ModTime()}, nil
}
