// Package query renders SQL for a single aliased table whose columns are
// exposed under view property names.
package query

import (
	"strings"
)

type projected struct {
	column string
	view   string
}

// ProjectionMap binds a table and alias to an ordered set of columns, each
// known to callers by a view property name.
type ProjectionMap struct {
	table   string
	alias   string
	entries []projected
	byView  map[string]int
}

func NewProjectionMap(table, alias string) *ProjectionMap {
	return &ProjectionMap{
		table:  table,
		alias:  alias,
		byView: make(map[string]int),
	}
}

// Project appends column under viewName. Projection order is the column
// order of SELECT and INSERT statements.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	p.byView[viewName] = len(p.entries)
	p.entries = append(p.entries, projected{column: column, view: viewName})
	return p
}

// From renders "table alias".
func (p *ProjectionMap) From() string {
	return p.table + " " + p.alias
}

// Column qualifies the column behind viewName. Unknown names pass through
// unchanged.
func (p *ProjectionMap) Column(viewName string) string {
	i, ok := p.byView[viewName]
	if !ok {
		return viewName
	}
	return p.qualify(p.entries[i].column)
}

// Columns lists every qualified column, comma separated.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.entries))
	for i, e := range p.entries {
		cols[i] = p.qualify(e.column)
	}
	return strings.Join(cols, ", ")
}

// Insert renders an INSERT of every projected column using d's placeholders.
func (p *ProjectionMap) Insert(d Dialect) string {
	cols := make([]string, len(p.entries))
	marks := make([]string, len(p.entries))
	for i, e := range p.entries {
		cols[i] = e.column
		marks[i] = d.Placeholder(i + 1)
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(p.table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(cols, ", "))
	sb.WriteString(") VALUES (")
	sb.WriteString(strings.Join(marks, ", "))
	sb.WriteString(")")
	return sb.String()
}

func (p *ProjectionMap) qualify(column string) string {
	return p.alias + "." + column
}
