package backup

// File is a read-only projection of one row in the manifest index. The core
// never creates, mutates, or deletes index entries; instances are built by
// the manifest package when scanning query results.
type File struct {
	id           FileID
	domain       Domain
	relativePath RelativePath
	flags        FileFlags
	metadata     []byte
}

// NewFile assembles a File projection from validated value types. The
// metadata slice is the raw property-list blob stored alongside the record
// and is carried opaquely.
func NewFile(id FileID, domain Domain, relativePath RelativePath, flags FileFlags, metadata []byte) File {
	return File{
		id:           id,
		domain:       domain,
		relativePath: relativePath,
		flags:        flags,
		metadata:     metadata,
	}
}

// ID returns the content-addressed file identifier.
func (f File) ID() FileID {
	return f.id
}

// Domain returns the owning application identifier.
func (f File) Domain() Domain {
	return f.domain
}

// RelativePath returns the file's logical path within the backup.
func (f File) RelativePath() RelativePath {
	return f.relativePath
}

// Flags returns the file's attribute flags.
func (f File) Flags() FileFlags {
	return f.flags
}

// Metadata returns the raw metadata blob stored with the record.
func (f File) Metadata() []byte {
	return f.metadata
}
