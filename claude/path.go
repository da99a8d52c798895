package claude

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDir returns the Claude Desktop configuration directory for the
// current platform:
//
//	darwin:  ~/Library/Application Support/Claude
//	windows: %APPDATA%\Claude
//	other:   ~/.config/claude-desktop
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Claude"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Claude"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "Claude"), nil
	default:
		return filepath.Join(home, ".config", "claude-desktop"), nil
	}
}

// DefaultPath returns the full path of the Claude Desktop configuration file
// for the current platform.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
