package backup

import (
	"strings"
	"testing"
)

func TestNewFileID(t *testing.T) {
	valid := "a1b2c3d4e5f6789012345678901234567890abcd"

	id, err := NewFileID(valid)
	if err != nil {
		t.Fatalf("NewFileID returned error: %v", err)
	}
	if id.Value() != valid {
		t.Fatalf("expected %q, got %q", valid, id.Value())
	}
	if id.Prefix() != "a1" {
		t.Fatalf("expected prefix a1, got %q", id.Prefix())
	}
}

func TestNewFileIDNormalisesCase(t *testing.T) {
	upper := "A1B2C3D4E5F6789012345678901234567890ABCD"

	id, err := NewFileID(upper)
	if err != nil {
		t.Fatalf("NewFileID returned error: %v", err)
	}
	if id.Value() != strings.ToLower(upper) {
		t.Fatalf("expected lowercase value, got %q", id.Value())
	}
}

func TestNewFileIDRejectsInvalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "abc123"},
		{"too long", strings.Repeat("a", 41)},
		{"non-hex", "g1b2c3d4e5f6789012345678901234567890abcd"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewFileID(tc.input); err == nil {
				t.Fatalf("expected error for %q", tc.input)
			}
		})
	}
}

func TestNewDomain(t *testing.T) {
	d, err := NewDomain("AppDomain-com.example.app")
	if err != nil {
		t.Fatalf("NewDomain returned error: %v", err)
	}
	if d.Value() != "AppDomain-com.example.app" {
		t.Fatalf("unexpected value %q", d.Value())
	}

	if _, err := NewDomain(""); err == nil {
		t.Fatal("expected error for empty domain")
	}
	if _, err := NewDomain(strings.Repeat("a", 256)); err == nil {
		t.Fatal("expected error for over-long domain")
	}
	if _, err := NewDomain(strings.Repeat("a", 255)); err != nil {
		t.Fatalf("255-character domain should be valid: %v", err)
	}
}

func TestNewRelativePath(t *testing.T) {
	p, err := NewRelativePath("Documents/file.txt")
	if err != nil {
		t.Fatalf("NewRelativePath returned error: %v", err)
	}
	if p.Value() != "Documents/file.txt" {
		t.Fatalf("unexpected value %q", p.Value())
	}

	// An empty path denotes the backup's logical root.
	if _, err := NewRelativePath(""); err != nil {
		t.Fatalf("empty path should be valid: %v", err)
	}

	if _, err := NewRelativePath("/absolute/path"); err == nil {
		t.Fatal("expected error for absolute path")
	}
	if _, err := NewRelativePath(`\absolute\path`); err == nil {
		t.Fatal("expected error for Windows absolute path")
	}
}
