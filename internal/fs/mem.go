package fs

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// MemFileSystem is an in-memory filesystem for testing.
type MemFileSystem struct {
	afero.Fs
}

// Copy copies a regular file from src to dst.
func (m *MemFileSystem) Copy(src, dst string) error {
	return copyFile(m.Fs, src, dst)
}

// Move renames src to dst.
func (m *MemFileSystem) Move(src, dst string) error {
	return m.Fs.Rename(src, dst)
}

// Times reports the in-memory modification time.
func (m *MemFileSystem) Times(name string) (Times, error) {
	return statTimes(m.Fs, name)
}

// MustMkdirAll creates a directory and panics on error. For use in tests.
func (m *MemFileSystem) MustMkdirAll(path string) {
	if err := m.Fs.MkdirAll(path, 0755); err != nil {
		panic(fmt.Sprintf("MustMkdirAll(%q): %v", path, err))
	}
}

// MustWriteFile creates a file (and its parent directories) and panics on error.
// For use in tests.
func (m *MemFileSystem) MustWriteFile(path, content string) {
	m.MustMkdirAll(filepath.Dir(path))
	if err := afero.WriteFile(m.Fs, path, []byte(content), 0644); err != nil {
		panic(fmt.Sprintf("MustWriteFile(%q): %v", path, err))
	}
}

// MustReadFile returns a file's content and panics on error. For use in tests.
func (m *MemFileSystem) MustReadFile(path string) string {
	data, err := afero.ReadFile(m.Fs, path)
	if err != nil {
		panic(fmt.Sprintf("MustReadFile(%q): %v", path, err))
	}
	return string(data)
}
