package sqldb

import (
	"context"
	"database/sql"
)

// FileRow mirrors one row of the files table.
type FileRow struct {
	FileID       string
	Domain       string
	RelativePath string
	Flags        int64
	File         []byte
}

const listFiles = `
SELECT fileID, domain, relativePath, flags, file
FROM files
ORDER BY domain ASC, relativePath ASC
`

// ListFiles returns every row of the files table ordered by domain and
// relative path.
func (q *Queries) ListFiles(ctx context.Context) ([]FileRow, error) {
	rows, err := q.db.QueryContext(ctx, listFiles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FileRow
	for rows.Next() {
		var row FileRow
		if err := rows.Scan(&row.FileID, &row.Domain, &row.RelativePath, &row.Flags, &row.File); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	return items, rows.Err()
}

const getFileByID = `
SELECT fileID, domain, relativePath, flags, file
FROM files
WHERE fileID = ?
`

// GetFileByID returns the row with the given file identifier.
func (q *Queries) GetFileByID(ctx context.Context, fileID string) (FileRow, error) {
	var row FileRow
	err := q.db.QueryRowContext(ctx, getFileByID, fileID).
		Scan(&row.FileID, &row.Domain, &row.RelativePath, &row.Flags, &row.File)
	return row, err
}

const countFiles = `
SELECT COUNT(*) FROM files
`

// CountFiles returns the total number of rows in the files table.
func (q *Queries) CountFiles(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countFiles).Scan(&count)
	return count, err
}

const insertFile = `
INSERT INTO files (fileID, domain, relativePath, flags, file)
VALUES (?, ?, ?, ?, ?)
`

// InsertFileParams holds the column values for InsertFile.
type InsertFileParams struct {
	FileID       string
	Domain       string
	RelativePath string
	Flags        int64
	File         []byte
}

// InsertFile adds a row to the files table. Only used when building fixture
// manifests; live manifests are read-only input.
func (q *Queries) InsertFile(ctx context.Context, arg InsertFileParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, insertFile, arg.FileID, arg.Domain, arg.RelativePath, arg.Flags, arg.File)
}
