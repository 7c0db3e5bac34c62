// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"strings"
	"time"

	"amenade/internal/core/domain/model/kernel"
)

// predicateOp discriminates the comparison a predicate performs.
type predicateOp int

const (
	opEquals predicateOp = iota
	opAtLeast
	opAtMost
	opIsNull
)

// Predicate is one typed column condition. Predicates are built through the
// typed constructors below rather than free-form column/value maps, so a
// filter can only express conditions the read model supports.
type Predicate struct {
	column string
	op     predicateOp
	value  any
}

// EqualsUUID matches rows whose column equals the given identifier.
func EqualsUUID(column string, id kernel.UUID) Predicate {
	return Predicate{column: column, op: opEquals, value: id.Bytes()}
}

// EqualsInt matches rows whose column equals the given integer, used for
// status discriminators.
func EqualsInt(column string, value int) Predicate {
	return Predicate{column: column, op: opEquals, value: value}
}

// AtLeastFloat matches rows whose column is greater than or equal to the
// given number.
func AtLeastFloat(column string, value float64) Predicate {
	return Predicate{column: column, op: opAtLeast, value: value}
}

// AtMostTime matches rows whose column is at or before the given instant.
func AtMostTime(column string, value time.Time) Predicate {
	return Predicate{column: column, op: opAtMost, value: value}
}

// IsNull matches rows whose column is NULL.
func IsNull(column string) Predicate {
	return Predicate{column: column, op: opIsNull}
}

// Filter composes typed predicates into a SQL WHERE clause. All predicates
// are combined with AND.
type Filter struct {
	predicates []Predicate
}

// NewFilter creates a filter from the given predicates.
func NewFilter(predicates ...Predicate) Filter {
	return Filter{predicates: predicates}
}

// Clause renders the filter as a WHERE fragment with positional
// placeholders, plus the matching argument list. An empty filter renders an
// always-true clause so callers can append it unconditionally.
func (f Filter) Clause() (string, []any) {
	if len(f.predicates) == 0 {
		return "1=1", nil
	}

	conditions := make([]string, 0, len(f.predicates))
	args := make([]any, 0, len(f.predicates))

	for _, p := range f.predicates {
		switch p.op {
		case opEquals:
			conditions = append(conditions, p.column+" = ?")
			args = append(args, p.value)
		case opAtLeast:
			conditions = append(conditions, p.column+" >= ?")
			args = append(args, p.value)
		case opAtMost:
			conditions = append(conditions, p.column+" <= ?")
			args = append(args, p.value)
		case opIsNull:
			conditions = append(conditions, p.column+" IS NULL")
		}
	}

	return strings.Join(conditions, " AND "), args
}
