// Package mcp exposes backup search and extraction over the Model Context
// Protocol so AI tooling can drive bdig programmatically.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bdig/bdig/internal/config"
	"github.com/bdig/bdig/internal/extract"
	"github.com/bdig/bdig/internal/manifest"
	"github.com/bdig/bdig/internal/metadata"
	"github.com/bdig/bdig/internal/query"
	"github.com/bdig/bdig/internal/search"
)

// Server wraps the MCP server with backup-specific tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server instance. Connections to manifest
// databases are opened per tool call since each call may target a different
// backup.
func NewServer(version string) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "bdig",
		Version: version,
	}, nil)

	s := &Server{server: mcpServer}
	s.registerTools()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "backup_list",
		Description: "List the device backups available under a backups root directory",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "backup_search",
		Description: "Search a backup's manifest for files by domain and relative path",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "backup_extract",
		Description: "Extract files matching the given filters from a backup into an output directory",
	}, s.handleExtract)
}

// Input/Output types for each tool

type ListInput struct {
	BackupsRoot *string `json:"backupsRoot,omitempty" jsonschema:"description=Directory holding one subdirectory per backup (platform default if omitted)"`
}

type ListBackup struct {
	ID             string `json:"id"`
	DeviceName     string `json:"deviceName"`
	ProductName    string `json:"productName"`
	LastBackupDate string `json:"lastBackupDate"`
}

type ListOutput struct {
	Backups []ListBackup `json:"backups"`
}

type FilterInput struct {
	BackupDir      string  `json:"backupDir" jsonschema:"required,description=Backup directory containing Manifest.db"`
	DomainExact    *string `json:"domainExact,omitempty" jsonschema:"description=Match the owning domain exactly"`
	DomainContains *string `json:"domainContains,omitempty" jsonschema:"description=Match domains containing this substring"`
	PathExact      *string `json:"pathExact,omitempty" jsonschema:"description=Match the relative path exactly"`
	PathContains   *string `json:"pathContains,omitempty" jsonschema:"description=Match relative paths containing this substring"`
	Or             *bool   `json:"or,omitempty" jsonschema:"description=Combine filters with OR instead of AND"`
}

type SearchFile struct {
	FileID       string `json:"fileId"`
	Domain       string `json:"domain"`
	RelativePath string `json:"relativePath"`
	Flags        string `json:"flags"`
}

type SearchOutput struct {
	Files []SearchFile `json:"files"`
}

type ExtractInput struct {
	BackupDir      string  `json:"backupDir" jsonschema:"required,description=Backup directory containing Manifest.db"`
	OutputDir      string  `json:"outputDir" jsonschema:"required,description=Directory to extract files into"`
	DomainExact    *string `json:"domainExact,omitempty" jsonschema:"description=Match the owning domain exactly"`
	DomainContains *string `json:"domainContains,omitempty" jsonschema:"description=Match domains containing this substring"`
	PathExact      *string `json:"pathExact,omitempty" jsonschema:"description=Match the relative path exactly"`
	PathContains   *string `json:"pathContains,omitempty" jsonschema:"description=Match relative paths containing this substring"`
	Or             *bool   `json:"or,omitempty" jsonschema:"description=Combine filters with OR instead of AND"`
}

type ExtractError struct {
	FileID       string `json:"fileId"`
	RelativePath string `json:"relativePath"`
	Message      string `json:"message"`
}

type ExtractOutput struct {
	ExtractedCount int            `json:"extractedCount"`
	SkippedCount   int            `json:"skippedCount"`
	Errors         []ExtractError `json:"errors"`
}

func (f FilterInput) params() query.Params {
	var useOr bool
	if f.Or != nil {
		useOr = *f.Or
	}
	return query.Params{
		DomainExact:    f.DomainExact,
		DomainContains: f.DomainContains,
		PathExact:      f.PathExact,
		PathContains:   f.PathContains,
		UseOr:          useOr,
	}
}

// Tool handlers

func (s *Server) handleList(_ context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	root := config.GetBackupsRoot()
	if input.BackupsRoot != nil && *input.BackupsRoot != "" {
		root = *input.BackupsRoot
	}

	backups, err := metadata.NewRepository(root).FindAll()
	if err != nil {
		return nil, ListOutput{}, fmt.Errorf("failed to list backups: %w", err)
	}

	out := ListOutput{Backups: make([]ListBackup, 0, len(backups))}
	for _, b := range backups {
		out.Backups = append(out.Backups, ListBackup{
			ID:             b.ID.Value(),
			DeviceName:     b.DeviceName,
			ProductName:    b.ProductName,
			LastBackupDate: b.LastBackupDate.Format(time.RFC3339),
		})
	}

	return nil, out, nil
}

func (s *Server) handleSearch(ctx context.Context, _ *mcp.CallToolRequest, input FilterInput) (*mcp.CallToolResult, SearchOutput, error) {
	dbCtx, err := manifest.Open(input.BackupDir)
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("failed to open backup: %w", err)
	}
	defer func() {
		_ = manifest.Close(dbCtx)
	}()

	svc := search.New(manifest.NewFileRepository(dbCtx))

	files, err := svc.Search(ctx, input.params())
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("failed to search backup: %w", err)
	}

	out := SearchOutput{Files: make([]SearchFile, 0, len(files))}
	for _, f := range files {
		out.Files = append(out.Files, SearchFile{
			FileID:       f.ID().Value(),
			Domain:       f.Domain().Value(),
			RelativePath: f.RelativePath().Value(),
			Flags:        f.Flags().String(),
		})
	}

	return nil, out, nil
}

func (s *Server) handleExtract(ctx context.Context, _ *mcp.CallToolRequest, input ExtractInput) (*mcp.CallToolResult, ExtractOutput, error) {
	var useOr bool
	if input.Or != nil {
		useOr = *input.Or
	}
	params := query.Params{
		DomainExact:    input.DomainExact,
		DomainContains: input.DomainContains,
		PathExact:      input.PathExact,
		PathContains:   input.PathContains,
		UseOr:          useOr,
	}

	q, err := params.Build()
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	dbCtx, err := manifest.Open(input.BackupDir)
	if err != nil {
		return nil, ExtractOutput{}, fmt.Errorf("failed to open backup: %w", err)
	}
	defer func() {
		_ = manifest.Close(dbCtx)
	}()

	extractor := extract.New(manifest.NewFileRepository(dbCtx))

	result, err := extractor.Run(ctx, input.BackupDir, input.OutputDir, q)
	if err != nil {
		return nil, ExtractOutput{}, fmt.Errorf("failed to extract files: %w", err)
	}

	out := ExtractOutput{
		ExtractedCount: result.ExtractedCount,
		SkippedCount:   result.SkippedCount,
		Errors:         make([]ExtractError, 0, len(result.Errors)),
	}
	for _, ferr := range result.Errors {
		out.Errors = append(out.Errors, ExtractError{
			FileID:       ferr.FileID,
			RelativePath: ferr.RelativePath,
			Message:      ferr.Message,
		})
	}

	return nil, out, nil
}
