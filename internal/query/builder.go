package query

import "errors"

// ErrNoCondition is returned by Build when no filter is present.
var ErrNoCondition = errors.New("at least one search condition must be specified")

// Params holds the flat, optional filters accepted from the CLI or other
// callers. A nil pointer means the filter is absent; a pointer to the empty
// string is a present filter whose match value happens to be empty.
type Params struct {
	DomainExact    *string
	DomainContains *string
	PathExact      *string
	PathContains   *string
	UseOr          bool
}

// Build converts the flat filters into a single Query.
//
// Present filters are collected in a fixed order (domain-exact,
// domain-contains, path-exact, path-contains). A single condition is
// returned bare; multiple conditions are combined with AllOf, or AnyOf when
// UseOr is set. An empty filter set fails with ErrNoCondition.
func (p Params) Build() (Query, error) {
	var conditions []Basic

	if p.DomainExact != nil {
		conditions = append(conditions, DomainExact(*p.DomainExact))
	}
	if p.DomainContains != nil {
		conditions = append(conditions, DomainContains(*p.DomainContains))
	}
	if p.PathExact != nil {
		conditions = append(conditions, PathExact(*p.PathExact))
	}
	if p.PathContains != nil {
		conditions = append(conditions, PathContains(*p.PathContains))
	}

	switch {
	case len(conditions) == 0:
		return nil, ErrNoCondition
	case len(conditions) == 1:
		return conditions[0], nil
	case p.UseOr:
		return AnyOf(conditions), nil
	default:
		return AllOf(conditions), nil
	}
}
