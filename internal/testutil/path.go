package testutil

import (
	"path/filepath"
	"runtime"
)

// Path creates a platform-independent absolute path by joining parts with the
// OS-specific separator. Use it instead of hardcoded paths like "/src/a.txt"
// so tests also pass on Windows.
//
// On Unix, Path("/", "src", "a.txt") returns "/src/a.txt"
// On Windows, Path("/", "src", "a.txt") returns "C:\\src\\a.txt"
func Path(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}

	if parts[0] == "/" {
		if runtime.GOOS == "windows" {
			// C: alone is relative
			return "C:\\" + filepath.Join(parts[1:]...)
		}
		return filepath.Join(parts...)
	}

	return filepath.Join(parts...)
}
