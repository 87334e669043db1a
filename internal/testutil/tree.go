package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// FileEntry describes a file or directory to create under a test root.
type FileEntry struct {
	Path    string // relative path using forward slashes (e.g., "source/file.txt")
	IsDir   bool
	Content string
}

// File creates a FileEntry for a file at the given path.
// Path should use forward slashes regardless of OS.
func File(path string) FileEntry {
	return FileEntry{Path: path}
}

// Dir creates a FileEntry for a directory at the given path.
func Dir(path string) FileEntry {
	return FileEntry{Path: path, IsDir: true}
}

// WithContent sets the file content.
func (f FileEntry) WithContent(content string) FileEntry {
	f.Content = content
	return f
}

// Create builds the entries under root on afs, creating parents as needed.
func Create(t *testing.T, afs afero.Fs, root string, entries ...FileEntry) {
	t.Helper()

	for _, e := range entries {
		path := filepath.Join(root, filepath.FromSlash(e.Path))

		if e.IsDir {
			if err := afs.MkdirAll(path, 0755); err != nil {
				t.Fatalf("failed to create directory %s: %v", e.Path, err)
			}
			continue
		}

		if err := afs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create parent directory for %s: %v", e.Path, err)
		}
		if err := afero.WriteFile(afs, path, []byte(e.Content), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", e.Path, err)
		}
	}
}

// AssertExists fails the test for every relative path that is missing under root.
func AssertExists(t *testing.T, afs afero.Fs, root string, paths ...string) {
	t.Helper()

	for _, p := range paths {
		path := filepath.Join(root, filepath.FromSlash(p))
		if _, err := afs.Stat(path); err != nil {
			t.Errorf("expected %s to exist, but it doesn't", p)
		}
	}
}

// AssertMissing fails the test for every relative path that exists under root.
func AssertMissing(t *testing.T, afs afero.Fs, root string, paths ...string) {
	t.Helper()

	for _, p := range paths {
		path := filepath.Join(root, filepath.FromSlash(p))
		if _, err := afs.Stat(path); !os.IsNotExist(err) {
			t.Errorf("expected %s to NOT exist, but it does", p)
		}
	}
}

// AssertContent fails the test if the file at the relative path doesn't hold want.
func AssertContent(t *testing.T, afs afero.Fs, root, path, want string) {
	t.Helper()

	data, err := afero.ReadFile(afs, filepath.Join(root, filepath.FromSlash(path)))
	if err != nil {
		t.Errorf("failed to read %s: %v", path, err)
		return
	}
	if string(data) != want {
		t.Errorf("%s content = %q, want %q", path, data, want)
	}
}
