// Package config resolves the default locations bdig reads backups from.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

// BackupsRootEnv overrides every other backups root candidate when set.
const BackupsRootEnv = "BDIG_BACKUPS_ROOT"

// GetBackupsRoot resolves the directory that holds one subdirectory per
// device backup. Resolution order: the BDIG_BACKUPS_ROOT environment
// variable, the OS-conventional sync location under the user's home, and
// finally a bdig directory under the XDG data home.
func GetBackupsRoot() string {
	if explicit := os.Getenv(BackupsRootEnv); explicit != "" {
		return explicit
	}

	if home, err := os.UserHomeDir(); err == nil {
		if conventional := conventionalBackupsDir(home); conventional != "" {
			if _, err := os.Stat(conventional); err == nil {
				return conventional
			}
		}
	}

	xdg.Reload()

	dataHome := xdg.DataHome
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "bdig", "backups")
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "bdig", "backups")
}

// conventionalBackupsDir returns the platform's usual device-sync backup
// location, or "" when the platform has none.
func conventionalBackupsDir(home string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "MobileSync", "Backup")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Apple Computer", "MobileSync", "Backup")
	default:
		return ""
	}
}
