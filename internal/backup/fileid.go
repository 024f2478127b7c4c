// Package backup provides the domain types describing files stored in a
// device backup: validated identifiers, attribute flags, and the File
// projection read from the manifest index.
package backup

import (
	"fmt"
	"strings"
)

// FileIDLength is the expected length of a file identifier: a SHA-1 digest
// rendered as hexadecimal.
const FileIDLength = 40

// FileID identifies the content-addressed blob holding a file's bytes.
// Values are normalised to lowercase at construction.
type FileID struct {
	value string
}

// NewFileID validates and normalises a file identifier. The input must be
// exactly 40 hexadecimal characters.
func NewFileID(id string) (FileID, error) {
	if id == "" {
		return FileID{}, fmt.Errorf("file ID cannot be empty")
	}
	if len(id) != FileIDLength {
		return FileID{}, fmt.Errorf("file ID must be %d characters long, got %d", FileIDLength, len(id))
	}
	for _, c := range id {
		if !isHexDigit(c) {
			return FileID{}, fmt.Errorf("file ID must contain only hexadecimal characters: %q", id)
		}
	}
	return FileID{value: strings.ToLower(id)}, nil
}

// Value returns the lowercase hexadecimal form.
func (id FileID) Value() string {
	return id.value
}

// Prefix returns the first two characters, used as the fan-out directory in
// the blob store.
func (id FileID) Prefix() string {
	return id.value[:2]
}

func (id FileID) String() string {
	return id.value
}

func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
