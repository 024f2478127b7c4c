package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const infoTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Unique Identifier</key>
	<string>%s</string>
	<key>Device Name</key>
	<string>%s</string>
	<key>Product Name</key>
	<string>%s</string>
	<key>Last Backup Date</key>
	<date>%s</date>
</dict>
</plist>
`

const testBackupID = "00008110-000a1bc2d3e4f5g6"

func writeBackupDir(t *testing.T, root, id, deviceName, productName string) {
	t.Helper()
	dir := filepath.Join(root, id)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := fmt.Sprintf(infoTemplate, id, deviceName, productName, "2024-01-15T10:30:00Z")
	if err := os.WriteFile(filepath.Join(dir, InfoFileName), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestNewBackupID(t *testing.T) {
	id, err := NewBackupID(testBackupID)
	if err != nil {
		t.Fatalf("NewBackupID returned error: %v", err)
	}
	if id.Value() != testBackupID {
		t.Fatalf("unexpected value %q", id.Value())
	}

	upper, err := NewBackupID(strings.ToUpper(testBackupID))
	if err != nil {
		t.Fatalf("NewBackupID returned error: %v", err)
	}
	if upper.Value() != testBackupID {
		t.Fatalf("expected lowercase normalisation, got %q", upper.Value())
	}

	for _, invalid := range []string{"", "short", strings.Repeat("a", 26), "00008110_000a1bc2d3e4f5g6"} {
		if _, err := NewBackupID(invalid); err == nil {
			t.Fatalf("expected error for %q", invalid)
		}
	}
}

func TestFindAll(t *testing.T) {
	root := t.TempDir()
	writeBackupDir(t, root, testBackupID, "Test Phone", "Phone16,1")
	writeBackupDir(t, root, "00008120-111a1bc2d3e4f5g6", "Tablet", "Tablet14,2")

	// A directory without a descriptor is skipped, not an error.
	if err := os.MkdirAll(filepath.Join(root, "not-a-backup"), 0o750); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	// Loose files under the root are ignored.
	if err := os.WriteFile(filepath.Join(root, "stray.txt"), nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	backups, err := NewRepository(root).FindAll()
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
}

func TestFindByID(t *testing.T) {
	root := t.TempDir()
	writeBackupDir(t, root, testBackupID, "Test Phone", "Phone16,1")

	id, err := NewBackupID(testBackupID)
	if err != nil {
		t.Fatalf("NewBackupID: %v", err)
	}

	b, err := NewRepository(root).FindByID(id)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if b.DeviceName != "Test Phone" || b.ProductName != "Phone16,1" {
		t.Fatalf("unexpected backup %+v", b)
	}
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	if !b.LastBackupDate.Equal(want) {
		t.Fatalf("expected %v, got %v", want, b.LastBackupDate)
	}
}

func TestFindByIDMissingDirectory(t *testing.T) {
	id, err := NewBackupID(testBackupID)
	if err != nil {
		t.Fatalf("NewBackupID: %v", err)
	}

	if _, err := NewRepository(t.TempDir()).FindByID(id); err == nil {
		t.Fatal("expected error for missing backup directory")
	}
}

func TestFindAllMissingRoot(t *testing.T) {
	if _, err := NewRepository(filepath.Join(t.TempDir(), "absent")).FindAll(); err == nil {
		t.Fatal("expected error for missing backups root")
	}
}
