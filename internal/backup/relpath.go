package backup

import (
	"fmt"
	"strings"
)

// RelativePath is the path at which a file conceptually resides within the
// backup's virtual filesystem, independent of where its blob is stored.
// The empty path is valid and denotes a file at the backup's logical root.
type RelativePath struct {
	value string
}

// NewRelativePath validates a logical path. Absolute paths (leading '/' or
// '\') are rejected.
func NewRelativePath(path string) (RelativePath, error) {
	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, `\`) {
		return RelativePath{}, fmt.Errorf("relative path cannot be absolute: %q", path)
	}
	return RelativePath{value: path}, nil
}

// Value returns the path string.
func (p RelativePath) Value() string {
	return p.value
}

func (p RelativePath) String() string {
	return p.value
}
