package query

import (
	"reflect"
	"strings"
)

// SortField orders by a projected field name; unprojected names are used as-is.
type SortField struct {
	Field      string
	Descending bool
}

type predicate struct {
	column string
	value  any
}

// Builder renders a SELECT over a ProjectionMap with equality filters
// joined by AND and numbered for the target Dialect.
type Builder struct {
	projection  *ProjectionMap
	dialect     Dialect
	predicates  []predicate
	order       []SortField
	defaultSort []SortField
}

// NewBuilder uses defaultSort whenever OrderByFields is never given fields.
func NewBuilder(projection *ProjectionMap, dialect Dialect, defaultSort ...SortField) *Builder {
	return &Builder{
		projection:  projection,
		dialect:     dialect,
		defaultSort: defaultSort,
	}
}

func (b *Builder) OrderByFields(fields []SortField) *Builder {
	b.order = fields
	return b
}

// WhereEquals filters field = value. Nil values, including typed nil
// pointers, add no filter.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if !isNil(value) {
		b.predicates = append(b.predicates, predicate{b.projection.Column(field), value})
	}
	return b
}

// Build returns the statement and its positional arguments.
func (b *Builder) Build() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(b.projection.Columns())
	sb.WriteString(" FROM ")
	sb.WriteString(b.projection.From())

	var args []any
	for i, p := range b.predicates {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, p.value)
		sb.WriteString(p.column + " = " + b.dialect.Placeholder(len(args)))
	}

	order := b.order
	if len(order) == 0 {
		order = b.defaultSort
	}
	for i, f := range order {
		if i == 0 {
			sb.WriteString(" ORDER BY ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(b.projection.Column(f.Field))
		if f.Descending {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}

	return sb.String(), args
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
