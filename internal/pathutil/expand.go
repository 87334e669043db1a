package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde expands a leading ~ in a path to the user's home directory.
// Paths that don't start with ~ or ~/ are returned unchanged.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// Clean expands a leading ~ and cleans the result. Empty stays empty.
func Clean(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(ExpandTilde(path))
}
