// Package extract copies files matched by a manifest query out of a
// backup's content-addressed blob store into a directory tree that mirrors
// their logical paths.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bdig/bdig/internal/backup"
	"github.com/bdig/bdig/internal/blob"
	"github.com/bdig/bdig/internal/query"
)

// Searcher is the index capability the pipeline consumes: evaluate a query,
// get the matching files back in deterministic order.
type Searcher interface {
	Search(ctx context.Context, q query.Query) ([]backup.File, error)
}

// FileError records a single file that could not be extracted. The batch
// continues past it.
type FileError struct {
	FileID       string
	RelativePath string
	Message      string
}

// Result aggregates the per-file outcomes of one extraction run.
type Result struct {
	ExtractedCount int
	SkippedCount   int
	Errors         []FileError
}

// Extractor runs the extraction pipeline for one backup.
type Extractor struct {
	repo Searcher
}

// New wraps an index search capability.
func New(repo Searcher) *Extractor {
	return &Extractor{repo: repo}
}

// Run extracts every file matching q from the blob store under sourceDir
// into outputDir, preserving relative paths.
//
// Only two conditions are fatal: the index search failing and the output
// root being uncreatable. A missing source blob counts as a skip (manifests
// routinely reference content that was pruned from the backup), and any
// other per-file failure is recorded in the result while the batch
// continues. Files are processed sequentially, in index order.
func (e *Extractor) Run(ctx context.Context, sourceDir, outputDir string, q query.Query) (Result, error) {
	files, err := e.repo.Search(ctx, q)
	if err != nil {
		return Result{}, fmt.Errorf("failed to search manifest: %w", err)
	}

	var result Result
	if len(files) == 0 {
		return result, nil
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	for _, file := range files {
		extracted, err := extractOne(file, sourceDir, outputDir)
		switch {
		case err != nil:
			result.Errors = append(result.Errors, FileError{
				FileID:       file.ID().Value(),
				RelativePath: file.RelativePath().Value(),
				Message:      err.Error(),
			})
		case extracted:
			result.ExtractedCount++
		default:
			result.SkippedCount++
		}
	}

	return result, nil
}

// extractOne copies a single file. It returns false with a nil error when
// the source blob is absent.
func extractOne(file backup.File, sourceDir, outputDir string) (bool, error) {
	src := blob.Path(sourceDir, file.ID())
	if !blob.Exists(src) {
		return false, nil
	}

	dst := filepath.Join(outputDir, filepath.FromSlash(file.RelativePath().Value()))

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return false, fmt.Errorf("failed to create parent directory: %w", err)
	}

	if err := blob.Copy(src, dst); err != nil {
		return false, err
	}

	return true, nil
}
