package manifest

import "errors"

// ErrNotFound indicates a requested record does not exist.
var ErrNotFound = errors.New("manifest: not found")
