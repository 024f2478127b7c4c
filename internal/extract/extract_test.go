package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bdig/bdig/internal/backup"
	"github.com/bdig/bdig/internal/query"
)

type fakeRepo struct {
	files []backup.File
	err   error
}

func (r *fakeRepo) Search(_ context.Context, _ query.Query) ([]backup.File, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.files, nil
}

func mustFile(t *testing.T, id, domain, relativePath string) backup.File {
	t.Helper()
	fileID, err := backup.NewFileID(id)
	if err != nil {
		t.Fatalf("NewFileID: %v", err)
	}
	d, err := backup.NewDomain(domain)
	if err != nil {
		t.Fatalf("NewDomain: %v", err)
	}
	p, err := backup.NewRelativePath(relativePath)
	if err != nil {
		t.Fatalf("NewRelativePath: %v", err)
	}
	return backup.NewFile(fileID, d, p, backup.FlagRegularFile, nil)
}

// writeBlob stores content in the fan-out layout under root.
func writeBlob(t *testing.T, root, id string, content []byte) {
	t.Helper()
	dir := filepath.Join(root, id[:2])
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, id), content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

const (
	idNews   = "356a192b7913b04c54574d18c28d46e6395428ab"
	idPhoto  = "da4b9237bacccdf19c0760cab7aec4a8359010b0"
	idPruned = "77de68daecd823babbb58edb1c8e14d7106e83bb"
)

func TestRunNoMatches(t *testing.T) {
	extractor := New(&fakeRepo{})

	result, err := extractor.Run(context.Background(), t.TempDir(), filepath.Join(t.TempDir(), "out"), query.AnyOf(nil))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.ExtractedCount != 0 || result.SkippedCount != 0 || len(result.Errors) != 0 {
		t.Fatalf("expected zero outcome, got %+v", result)
	}
}

func TestRunExtractsAndSkips(t *testing.T) {
	sourceDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	writeBlob(t, sourceDir, idNews, []byte("news content"))
	writeBlob(t, sourceDir, idPhoto, []byte("photo content"))
	// idPruned has no blob: the manifest references pruned content.

	repo := &fakeRepo{files: []backup.File{
		mustFile(t, idNews, "AppDomain-com.example.news", "Documents/news.txt"),
		mustFile(t, idPhoto, "AppDomain-com.example.photos", "Pictures/photo.jpg"),
		mustFile(t, idPruned, "HomeDomain", "Library/settings.plist"),
	}}

	result, err := New(repo).Run(context.Background(), sourceDir, outputDir, query.AnyOf(nil))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if result.ExtractedCount != 2 {
		t.Fatalf("expected 2 extracted, got %d", result.ExtractedCount)
	}
	if result.SkippedCount != 1 {
		t.Fatalf("expected 1 skipped, got %d", result.SkippedCount)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %+v", result.Errors)
	}

	got, err := os.ReadFile(filepath.Join(outputDir, "Documents", "news.txt"))
	if err != nil {
		t.Fatalf("extracted file missing: %v", err)
	}
	if string(got) != "news content" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestRunPreservesNestedPaths(t *testing.T) {
	sourceDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	content := []byte("source bytes")

	writeBlob(t, sourceDir, idNews, content)
	repo := &fakeRepo{files: []backup.File{
		mustFile(t, idNews, "AppDomain-com.example.app", "Documents/Projects/app/src/main.ext"),
	}}

	result, err := New(repo).Run(context.Background(), sourceDir, outputDir, query.AnyOf(nil))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.ExtractedCount != 1 {
		t.Fatalf("expected 1 extracted, got %+v", result)
	}

	got, err := os.ReadFile(filepath.Join(outputDir, "Documents", "Projects", "app", "src", "main.ext"))
	if err != nil {
		t.Fatalf("nested file missing: %v", err)
	}
	if string(got) != string(content) {
		t.Fatal("extracted bytes differ from source blob")
	}
}

func TestRunIsolatesPerFileFailures(t *testing.T) {
	sourceDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	writeBlob(t, sourceDir, idNews, []byte("ok"))
	writeBlob(t, sourceDir, idPhoto, []byte("ok too"))

	// Pre-create a regular file where the second record needs a parent
	// directory, so its extraction fails.
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "blocked"), nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	repo := &fakeRepo{files: []backup.File{
		mustFile(t, idPhoto, "AppDomain-com.example.photos", "blocked/photo.jpg"),
		mustFile(t, idNews, "AppDomain-com.example.news", "Documents/news.txt"),
	}}

	result, err := New(repo).Run(context.Background(), sourceDir, outputDir, query.AnyOf(nil))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if result.ExtractedCount != 1 {
		t.Fatalf("the healthy record should still extract, got %+v", result)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %+v", result.Errors)
	}
	ferr := result.Errors[0]
	if ferr.FileID != idPhoto || ferr.RelativePath != "blocked/photo.jpg" {
		t.Fatalf("error should identify the failing record, got %+v", ferr)
	}
	if !strings.Contains(ferr.Message, "parent directory") {
		t.Fatalf("unexpected message %q", ferr.Message)
	}
}

func TestRunSearchFailureIsFatal(t *testing.T) {
	repo := &fakeRepo{err: errors.New("database is locked")}

	_, err := New(repo).Run(context.Background(), t.TempDir(), filepath.Join(t.TempDir(), "out"), query.AnyOf(nil))
	if err == nil {
		t.Fatal("expected error when search fails")
	}
	if !strings.Contains(err.Error(), "database is locked") {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestRunOutputRootFailureIsFatal(t *testing.T) {
	sourceDir := t.TempDir()
	writeBlob(t, sourceDir, idNews, []byte("x"))

	// Use a regular file as the output root so MkdirAll fails.
	blockedRoot := filepath.Join(t.TempDir(), "root")
	if err := os.WriteFile(blockedRoot, nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	repo := &fakeRepo{files: []backup.File{
		mustFile(t, idNews, "AppDomain-com.example.news", "Documents/news.txt"),
	}}

	if _, err := New(repo).Run(context.Background(), sourceDir, blockedRoot, query.AnyOf(nil)); err == nil {
		t.Fatal("expected error when output root cannot be created")
	}
}
