// Package search turns flat filter parameters into manifest queries and
// runs them against an index.
package search

import (
	"context"

	"github.com/bdig/bdig/internal/backup"
	"github.com/bdig/bdig/internal/query"
)

// Searcher is the index capability consumed by the service.
type Searcher interface {
	Search(ctx context.Context, q query.Query) ([]backup.File, error)
}

// Service builds a query from flat parameters and evaluates it.
type Service struct {
	repo Searcher
}

// New wraps an index search capability.
func New(repo Searcher) *Service {
	return &Service{repo: repo}
}

// Search builds a query from params and returns the matching files in index
// order. It fails with query.ErrNoCondition when no filter is set, and
// propagates index errors unchanged.
func (s *Service) Search(ctx context.Context, params query.Params) ([]backup.File, error) {
	q, err := params.Build()
	if err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, q)
}
