package fs

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"

	"github.com/djherbis/times"
	"github.com/spf13/afero"
)

// RealFileSystem performs actual filesystem operations.
type RealFileSystem struct {
	afero.Fs
}

// Rename performs the rename operation.
func (r *RealFileSystem) Rename(oldname, newname string) error {
	slog.Debug("renaming", "from", oldname, "to", newname)
	return r.Fs.Rename(oldname, newname)
}

// Remove performs the remove operation.
func (r *RealFileSystem) Remove(name string) error {
	slog.Debug("removing", "path", name)
	return r.Fs.Remove(name)
}

// Copy copies a regular file from src to dst.
func (r *RealFileSystem) Copy(src, dst string) error {
	slog.Debug("copying", "from", src, "to", dst)
	return copyFile(r.Fs, src, dst)
}

// Move renames src to dst, copying across devices when rename fails with EXDEV.
func (r *RealFileSystem) Move(src, dst string) error {
	slog.Debug("moving", "from", src, "to", dst)
	err := r.Fs.Rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}

	slog.Debug("rename crosses devices, copying instead", "from", src, "to", dst)
	if err := copyFile(r.Fs, src, dst); err != nil {
		return err
	}
	if err := r.Fs.Remove(src); err != nil {
		// Leave the source in place rather than losing data; report the partial move.
		return fmt.Errorf("copied to %s but could not remove source: %w", dst, err)
	}
	return nil
}

// Times reads modification and, where supported, birth time from the OS.
func (r *RealFileSystem) Times(name string) (Times, error) {
	ts, err := times.Stat(name)
	if err != nil {
		return Times{}, err
	}
	t := Times{Modified: ts.ModTime()}
	if ts.HasBirthTime() {
		t.Created = ts.BirthTime()
		t.HasCreated = true
	}
	return t, nil
}

// copyFile copies a single regular file.
func copyFile(afs afero.Fs, src, dst string) error {
	srcInfo, err := afs.Stat(src)
	if err != nil {
		return err
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}

	srcFile, err := afs.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := afs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}

	return dstFile.Close()
}
