package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"howett.net/plist"
)

// InfoFileName is the descriptor file expected inside each backup directory.
const InfoFileName = "Info.plist"

// backupInfo maps the descriptor fields this tool reads. Additional keys in
// the property list are ignored.
type backupInfo struct {
	UniqueIdentifier string    `plist:"Unique Identifier"`
	DeviceName       string    `plist:"Device Name"`
	ProductName      string    `plist:"Product Name"`
	LastBackupDate   time.Time `plist:"Last Backup Date"`
}

// Repository reads backup descriptors from a backups root directory, one
// subdirectory per backup.
type Repository struct {
	root string
}

// NewRepository creates a repository over the given backups root.
func NewRepository(root string) *Repository {
	return &Repository{root: root}
}

// FindAll returns descriptors for every backup under the root. Directories
// without a readable descriptor are skipped rather than failing the listing.
func (r *Repository) FindAll() ([]Backup, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read backups root %s: %w", r.root, err)
	}

	var backups []Backup
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		b, err := r.load(filepath.Join(r.root, entry.Name()))
		if err != nil {
			continue
		}
		backups = append(backups, b)
	}

	return backups, nil
}

// FindByID returns the descriptor of a single backup.
func (r *Repository) FindByID(id BackupID) (Backup, error) {
	dir := filepath.Join(r.root, id.Value())
	if _, err := os.Stat(dir); err != nil {
		return Backup{}, fmt.Errorf("backup directory does not exist: %s", dir)
	}
	return r.load(dir)
}

func (r *Repository) load(dir string) (Backup, error) {
	infoPath := filepath.Join(dir, InfoFileName)
	//nolint:gosec // G304: path is rooted under the configured backups root
	data, err := os.ReadFile(infoPath)
	if err != nil {
		return Backup{}, fmt.Errorf("failed to read %s: %w", infoPath, err)
	}

	var info backupInfo
	if _, err := plist.Unmarshal(data, &info); err != nil {
		return Backup{}, fmt.Errorf("failed to parse %s: %w", infoPath, err)
	}

	id, err := NewBackupID(info.UniqueIdentifier)
	if err != nil {
		return Backup{}, fmt.Errorf("invalid backup descriptor %s: %w", infoPath, err)
	}

	return Backup{
		ID:             id,
		DeviceName:     info.DeviceName,
		ProductName:    info.ProductName,
		LastBackupDate: info.LastBackupDate,
	}, nil
}
