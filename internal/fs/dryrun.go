package fs

import (
	"log/slog"
	"os"

	"github.com/spf13/afero"
)

// DryRunFileSystem simulates operations without modifying the real filesystem.
// Writes land in an in-memory layer over a read-only view of the OS filesystem.
type DryRunFileSystem struct {
	afero.Fs
}

// Remove is a no-op in dry-run mode.
// CoW doesn't support removing files that only exist in the base layer.
func (d *DryRunFileSystem) Remove(name string) error {
	slog.Debug("dry-run: would remove", "path", name)
	return nil
}

// RemoveAll is a no-op in dry-run mode.
func (d *DryRunFileSystem) RemoveAll(path string) error {
	slog.Debug("dry-run: would remove all", "path", path)
	return nil
}

// Rename copies to the new location so later listings see the file there.
// CoW can't rename files that only exist in the base layer, so the original stays.
func (d *DryRunFileSystem) Rename(oldname, newname string) error {
	slog.Debug("dry-run: would rename", "from", oldname, "to", newname)
	return copyFile(d.Fs, oldname, newname)
}

// Copy performs the copy in memory so later conflict checks observe it.
func (d *DryRunFileSystem) Copy(src, dst string) error {
	slog.Debug("dry-run: would copy", "from", src, "to", dst)
	return copyFile(d.Fs, src, dst)
}

// Move behaves like Rename in dry-run mode.
func (d *DryRunFileSystem) Move(src, dst string) error {
	return d.Rename(src, dst)
}

// Times reports the modification time seen through the CoW layer.
func (d *DryRunFileSystem) Times(name string) (Times, error) {
	return statTimes(d.Fs, name)
}

// MkdirAll delegates to the CoW filesystem.
func (d *DryRunFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return d.Fs.MkdirAll(path, perm)
}
