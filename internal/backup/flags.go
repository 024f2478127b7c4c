package backup

import "strings"

// FileFlags is a bitset of independent file attributes as recorded in the
// manifest index. Any combination of bits is valid; no mutual exclusivity is
// enforced.
type FileFlags uint16

// Flag bit positions. These match the integer values stored in the flags
// column of the manifest's files table.
const (
	FlagRegularFile  FileFlags = 1 << 0
	FlagDirectory    FileFlags = 1 << 1
	FlagSymbolicLink FileFlags = 1 << 2
	FlagHidden       FileFlags = 1 << 3
	FlagSystem       FileFlags = 1 << 4
	FlagArchive      FileFlags = 1 << 5
	FlagReadOnly     FileFlags = 1 << 6
	FlagCompressed   FileFlags = 1 << 7
	FlagEncrypted    FileFlags = 1 << 8
	FlagSparse       FileFlags = 1 << 9
)

// flagMask covers every defined bit; bits outside it are dropped when
// converting from raw storage values.
const flagMask = FlagRegularFile | FlagDirectory | FlagSymbolicLink |
	FlagHidden | FlagSystem | FlagArchive | FlagReadOnly |
	FlagCompressed | FlagEncrypted | FlagSparse

// FileFlagsFromInt converts a raw flags column value, truncating any
// undefined bits.
func FileFlagsFromInt(raw int64) FileFlags {
	return FileFlags(raw) & flagMask
}

// Int returns the raw integer form stored in the index.
func (f FileFlags) Int() int64 {
	return int64(f)
}

// Has reports whether every bit in mask is set.
func (f FileFlags) Has(mask FileFlags) bool {
	return f&mask == mask
}

// IsRegularFile reports whether the regular-file bit is set.
func (f FileFlags) IsRegularFile() bool { return f.Has(FlagRegularFile) }

// IsDirectory reports whether the directory bit is set.
func (f FileFlags) IsDirectory() bool { return f.Has(FlagDirectory) }

// IsSymbolicLink reports whether the symlink bit is set.
func (f FileFlags) IsSymbolicLink() bool { return f.Has(FlagSymbolicLink) }

// IsHidden reports whether the hidden bit is set.
func (f FileFlags) IsHidden() bool { return f.Has(FlagHidden) }

// IsSystem reports whether the system bit is set.
func (f FileFlags) IsSystem() bool { return f.Has(FlagSystem) }

// IsArchive reports whether the archive bit is set.
func (f FileFlags) IsArchive() bool { return f.Has(FlagArchive) }

// IsReadOnly reports whether the read-only bit is set.
func (f FileFlags) IsReadOnly() bool { return f.Has(FlagReadOnly) }

// IsCompressed reports whether the compressed bit is set.
func (f FileFlags) IsCompressed() bool { return f.Has(FlagCompressed) }

// IsEncrypted reports whether the encrypted bit is set.
func (f FileFlags) IsEncrypted() bool { return f.Has(FlagEncrypted) }

// IsSparse reports whether the sparse bit is set.
func (f FileFlags) IsSparse() bool { return f.Has(FlagSparse) }

func (f FileFlags) String() string {
	names := []struct {
		bit  FileFlags
		name string
	}{
		{FlagRegularFile, "file"},
		{FlagDirectory, "dir"},
		{FlagSymbolicLink, "symlink"},
		{FlagHidden, "hidden"},
		{FlagSystem, "system"},
		{FlagArchive, "archive"},
		{FlagReadOnly, "readonly"},
		{FlagCompressed, "compressed"},
		{FlagEncrypted, "encrypted"},
		{FlagSparse, "sparse"},
	}

	var set []string
	for _, n := range names {
		if f.Has(n.bit) {
			set = append(set, n.name)
		}
	}
	if len(set) == 0 {
		return "none"
	}
	return strings.Join(set, "|")
}
