// Package metadata discovers device backups under a backups root directory
// and reads their descriptor files.
package metadata

import (
	"fmt"
	"strings"
	"time"
)

// BackupIDLength is the expected length of a backup directory name.
const BackupIDLength = 25

// BackupID identifies one backup under the backups root. Values are
// normalised to lowercase at construction.
type BackupID struct {
	value string
}

// NewBackupID validates a backup identifier: exactly 25 characters, each
// alphanumeric or a hyphen.
func NewBackupID(id string) (BackupID, error) {
	if id == "" {
		return BackupID{}, fmt.Errorf("backup ID cannot be empty")
	}
	if len(id) != BackupIDLength {
		return BackupID{}, fmt.Errorf("backup ID must be %d characters long, got %d", BackupIDLength, len(id))
	}
	for _, c := range id {
		if !isAlphanumeric(c) && c != '-' {
			return BackupID{}, fmt.Errorf("backup ID must contain only alphanumeric characters or hyphens: %q", id)
		}
	}
	return BackupID{value: strings.ToLower(id)}, nil
}

// Value returns the lowercase identifier.
func (id BackupID) Value() string {
	return id.value
}

func (id BackupID) String() string {
	return id.value
}

// Backup describes one backup found under the backups root.
type Backup struct {
	ID             BackupID
	DeviceName     string
	ProductName    string
	LastBackupDate time.Time
}

func isAlphanumeric(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	}
	return false
}
