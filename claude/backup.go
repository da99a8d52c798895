package claude

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// BackupCorrupt copies an unparseable configuration file to a sibling
// <path>.corrupt-<id>.bak file before the caller discards its content, so a
// hand-edit that went wrong can still be recovered. Returns the backup path.
func BackupCorrupt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s for backup: %w", path, err)
	}

	backup := fmt.Sprintf("%s.corrupt-%s.bak", path, uuid.NewString()[:8])
	if err := os.WriteFile(backup, data, 0o644); err != nil {
		return "", fmt.Errorf("writing backup %s: %w", backup, err)
	}
	return backup, nil
}
