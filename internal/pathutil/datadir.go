package pathutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
)

const appName = "extops"

// gitignoreContent keeps the data directory out of any repository it lands in.
const gitignoreContent = "# Automatically created by extops\n*"

// DefaultDataDir returns the platform-appropriate default working directory,
// used when a command is run without a directory argument.
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("APPDATA not set and cannot determine home directory: %w", err)
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, appName, "data"), nil
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appName, "data"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share", appName, "data"), nil
	}
}

// EnsureDataDir creates dir with a .gitignore if it doesn't exist yet.
func EnsureDataDir(afs afero.Fs, dir string) error {
	if exists, err := afero.DirExists(afs, dir); err != nil {
		return err
	} else if exists {
		return nil
	}

	if err := afs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	gitignore := filepath.Join(dir, ".gitignore")
	if err := afero.WriteFile(afs, gitignore, []byte(gitignoreContent), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", gitignore, err)
	}

	slog.Info("created data directory", "path", dir)
	return nil
}

// DataDir returns the default data directory, creating it on first use.
func DataDir(afs afero.Fs) (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	if err := EnsureDataDir(afs, dir); err != nil {
		return "", err
	}
	return dir, nil
}
