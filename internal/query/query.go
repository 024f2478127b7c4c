// Package query defines the predicate model used to filter the manifest
// index, independent of any storage technology.
package query

// Field selects which file attribute a basic condition inspects.
type Field int

// Queryable fields.
const (
	FieldDomain Field = iota
	FieldPath
)

// Match selects how a condition compares its value against the field. Both
// modes are case-sensitive.
type Match int

// Match modes.
const (
	MatchExact Match = iota
	MatchContains
)

// Op combines multiple basic conditions.
type Op int

// Combination operators.
const (
	OpAll Op = iota // every condition must match
	OpAny           // at least one condition must match
)

// Query is either a single Basic condition or a Composite combination of
// them. Implementations are plain data; evaluation lives with the index.
type Query interface {
	isQuery()
}

// Basic is a single condition on one field.
type Basic struct {
	Field Field
	Match Match
	Value string
}

func (Basic) isQuery() {}

// Composite combines basic conditions with a single operator.
//
// An empty Conditions list matches every record for both operators. For
// OpAll this is the usual identity for conjunction; for OpAny it is a
// deliberate policy choice (no conditions means no filtering, not "match
// nothing") that callers need to be aware of.
type Composite struct {
	Op         Op
	Conditions []Basic
}

func (Composite) isQuery() {}

// DomainExact matches records whose domain equals value.
func DomainExact(value string) Basic {
	return Basic{Field: FieldDomain, Match: MatchExact, Value: value}
}

// DomainContains matches records whose domain contains value as a substring.
func DomainContains(value string) Basic {
	return Basic{Field: FieldDomain, Match: MatchContains, Value: value}
}

// PathExact matches records whose relative path equals value.
func PathExact(value string) Basic {
	return Basic{Field: FieldPath, Match: MatchExact, Value: value}
}

// PathContains matches records whose relative path contains value as a
// substring.
func PathContains(value string) Basic {
	return Basic{Field: FieldPath, Match: MatchContains, Value: value}
}

// AllOf combines conditions so that a record must match every one.
func AllOf(conditions []Basic) Composite {
	return Composite{Op: OpAll, Conditions: conditions}
}

// AnyOf combines conditions so that a record must match at least one.
func AnyOf(conditions []Basic) Composite {
	return Composite{Op: OpAny, Conditions: conditions}
}

// Equal reports structural equality of two queries: same variant, operator,
// and conditions in the same order.
func Equal(a, b Query) bool {
	switch qa := a.(type) {
	case Basic:
		qb, ok := b.(Basic)
		return ok && qa == qb
	case Composite:
		qb, ok := b.(Composite)
		if !ok || qa.Op != qb.Op || len(qa.Conditions) != len(qb.Conditions) {
			return false
		}
		for i := range qa.Conditions {
			if qa.Conditions[i] != qb.Conditions[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}
