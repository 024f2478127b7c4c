// Package blob resolves and reads content-addressed blobs stored in a
// backup's two-level fan-out layout: <root>/<first-2-hex-chars>/<fileID>.
package blob

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bdig/bdig/internal/backup"
)

// Path returns the location of the blob holding the bytes for the given
// file identifier.
func Path(root string, id backup.FileID) string {
	return filepath.Join(root, id.Prefix(), id.Value())
}

// Exists reports whether the given path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Read returns the full contents of a blob.
func Read(path string) ([]byte, error) {
	//nolint:gosec // G304: path is derived from a validated file ID
	return os.ReadFile(path)
}

// Copy streams the blob at src to dst verbatim. The destination's parent
// directory must already exist.
func Copy(src, dst string) error {
	//nolint:gosec // G304: paths are derived from validated identifiers
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source blob: %w", err)
	}
	defer func() {
		_ = in.Close()
	}()

	//nolint:gosec // G304: destination is rooted under the caller's output directory
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy blob contents: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to finalise destination file: %w", err)
	}

	return nil
}
