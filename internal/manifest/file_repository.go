package manifest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/bdig/bdig/internal/backup"
	sqldb "github.com/bdig/bdig/internal/manifest/sqlc"
	"github.com/bdig/bdig/internal/query"
)

// FileRepository evaluates queries against the files table of a manifest
// database.
type FileRepository struct {
	ctx *Context
}

// NewFileRepository wraps a manifest connection.
func NewFileRepository(dbCtx *Context) *FileRepository {
	return &FileRepository{ctx: dbCtx}
}

// Search returns the files matching q, ordered ascending by domain and then
// relative path. The ordering is part of the contract: a fixed manifest and
// a fixed query always yield the same output.
func (r *FileRepository) Search(ctx context.Context, q query.Query) ([]backup.File, error) {
	if r.ctx == nil || r.ctx.DB == nil {
		return nil, fmt.Errorf("file repository: missing database context")
	}

	where, args := whereClause(q)

	var sb strings.Builder
	sb.WriteString("SELECT fileID, domain, relativePath, flags, file FROM files")
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}
	sb.WriteString(" ORDER BY domain ASC, relativePath ASC")

	rows, err := r.ctx.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query manifest: %w", err)
	}
	defer rows.Close()

	var files []backup.File
	for rows.Next() {
		var row sqldb.FileRow
		if err := rows.Scan(&row.FileID, &row.Domain, &row.RelativePath, &row.Flags, &row.File); err != nil {
			return nil, fmt.Errorf("failed to scan manifest row: %w", err)
		}
		file, err := mapFileRow(row)
		if err != nil {
			return nil, fmt.Errorf("invalid manifest row %s: %w", row.FileID, err)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest rows: %w", err)
	}

	return files, nil
}

// FindByID returns the file with the given identifier, or ErrNotFound.
func (r *FileRepository) FindByID(ctx context.Context, id backup.FileID) (backup.File, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return backup.File{}, fmt.Errorf("file repository: missing database context")
	}

	row, err := queries.GetFileByID(ctx, id.Value())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return backup.File{}, ErrNotFound
		}
		return backup.File{}, fmt.Errorf("failed to query manifest: %w", err)
	}

	return mapFileRow(row)
}

// Count returns the total number of files in the manifest.
func (r *FileRepository) Count(ctx context.Context) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, fmt.Errorf("file repository: missing database context")
	}

	count, err := queries.CountFiles(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count manifest rows: %w", err)
	}
	return count, nil
}

// whereClause translates a query into a SQL condition and its arguments. An
// empty composite of either operator produces no condition at all, so the
// query matches every record.
func whereClause(q query.Query) (string, []any) {
	switch v := q.(type) {
	case query.Basic:
		cond, arg := basicCondition(v)
		return cond, []any{arg}
	case query.Composite:
		if len(v.Conditions) == 0 {
			return "", nil
		}

		join := " AND "
		if v.Op == query.OpAny {
			join = " OR "
		}

		conds := make([]string, 0, len(v.Conditions))
		args := make([]any, 0, len(v.Conditions))
		for _, basic := range v.Conditions {
			cond, arg := basicCondition(basic)
			conds = append(conds, cond)
			args = append(args, arg)
		}
		return "(" + strings.Join(conds, join) + ")", args
	default:
		return "", nil
	}
}

func basicCondition(b query.Basic) (string, any) {
	column := "domain"
	if b.Field == query.FieldPath {
		column = "relativePath"
	}

	// instr is byte-wise and therefore case-sensitive, unlike LIKE.
	if b.Match == query.MatchContains {
		return fmt.Sprintf("instr(%s, ?) > 0", column), b.Value
	}
	return fmt.Sprintf("%s = ?", column), b.Value
}

func mapFileRow(row sqldb.FileRow) (backup.File, error) {
	id, err := backup.NewFileID(row.FileID)
	if err != nil {
		return backup.File{}, err
	}
	domain, err := backup.NewDomain(row.Domain)
	if err != nil {
		return backup.File{}, err
	}
	path, err := backup.NewRelativePath(row.RelativePath)
	if err != nil {
		return backup.File{}, err
	}

	return backup.NewFile(id, domain, path, backup.FileFlagsFromInt(row.Flags), row.File), nil
}

func queriesFromContext(ctx *Context) *sqldb.Queries {
	if ctx == nil {
		return nil
	}
	if ctx.Queries != nil {
		return ctx.Queries
	}
	if ctx.DB == nil {
		return nil
	}
	return sqldb.New(ctx.DB)
}
