// Package match resolves an extension and optional name substring into the
// files present under a directory.
package match

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

var (
	// ErrDirectoryNotFound is returned when the directory to search does not exist.
	ErrDirectoryNotFound = errors.New("directory does not exist")

	// ErrNotDirectory is returned when the path to search is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// Criteria selects files by name.
type Criteria struct {
	Extension string // required, without the leading dot
	Prefix    string // optional substring that must appear before the extension
	MimeType  string // optional, e.g. "text/plain" or "image/*"
}

// Normalize returns a copy with a leading dot stripped from Extension.
func (c Criteria) Normalize() Criteria {
	c.Extension = strings.TrimPrefix(c.Extension, ".")
	return c
}

// Validate reports whether the criteria can be used for matching.
func (c Criteria) Validate() error {
	c = c.Normalize()
	if c.Extension == "" {
		return errors.New("extension must not be empty")
	}
	if _, err := doublestar.Match(c.Pattern(), ""); err != nil {
		return fmt.Errorf("invalid match pattern %q: %w", c.Pattern(), err)
	}
	return nil
}

// Pattern returns the glob applied to base names: *<prefix>*.<extension>.
// Glob metacharacters in the prefix and extension match literally.
func (c Criteria) Pattern() string {
	c = c.Normalize()
	if c.Prefix == "" {
		return "*." + escape(c.Extension)
	}
	return "*" + escape(c.Prefix) + "*." + escape(c.Extension)
}

// Matches reports whether a base name satisfies the name part of the criteria.
func (c Criteria) Matches(name string) bool {
	ok, err := doublestar.Match(c.Pattern(), name)
	return err == nil && ok
}

// Entry is a matched filesystem path.
type Entry struct {
	Path    string
	Name    string
	Dir     string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

func newEntry(path string, info os.FileInfo) Entry {
	return Entry{
		Path:    path,
		Name:    filepath.Base(path),
		Dir:     filepath.Dir(path),
		IsDir:   info.IsDir(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}

// CheckDir returns nil if dir exists and is a directory.
func CheckDir(afs afero.Fs, dir string) error {
	info, err := afs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", dir, ErrDirectoryNotFound)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}
	return nil
}

// Match returns the entries under dir whose names satisfy the criteria.
// With recursive set the whole subtree is searched, otherwise only direct
// children. Matching directories are included with IsDir set. Entries are
// ordered lexically by path.
func Match(afs afero.Fs, dir string, criteria Criteria, recursive bool) ([]Entry, error) {
	criteria = criteria.Normalize()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	if err := CheckDir(afs, dir); err != nil {
		return nil, err
	}

	var entries []Entry
	keep := func(path string, info os.FileInfo) error {
		if !criteria.Matches(info.Name()) {
			return nil
		}
		if criteria.MimeType != "" {
			if info.IsDir() {
				return nil
			}
			ok, err := mimeMatches(afs, path, criteria.MimeType)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
		entries = append(entries, newEntry(path, info))
		return nil
	}

	if !recursive {
		infos, err := afero.ReadDir(afs, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
		}
		for _, info := range infos {
			if err := keep(filepath.Join(dir, info.Name()), info); err != nil {
				return nil, err
			}
		}
		return entries, nil
	}

	err := afero.Walk(afs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk %s: %w", path, err)
		}
		if path == dir {
			return nil
		}
		return keep(path, info)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Names returns the set of base names of the direct children of dir that
// satisfy the criteria.
func Names(afs afero.Fs, dir string, criteria Criteria) (map[string]struct{}, error) {
	criteria.MimeType = "" // a name clash is a clash whatever the content
	entries, err := Match(afs, dir, criteria, false)
	if err != nil {
		return nil, err
	}
	names := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		names[e.Name] = struct{}{}
	}
	return names, nil
}

// escape backslash-escapes doublestar metacharacters.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
