// Package listing builds and runs the search/filter/sort/paginate queries behind the
// list endpoints. Every identifier that reaches SQL comes from a static Entity
// definition; request values only ever travel as bind parameters.
package listing

import (
	"strings"
)

// FieldKind describes how a column is matched in text search and filters.
type FieldKind int

const (
	// TextField columns are matched directly.
	TextField FieldKind = iota
	// IntField columns are matched on their textual representation.
	IntField
)

// Field maps a logical (API) field name to its physical column.
type Field struct {
	Name       string
	Column     string
	Kind       FieldKind
	Searchable bool
	Filterable bool
}

// MatchExpr returns the SQL expression used for case-insensitive text matching.
func (f Field) MatchExpr() string {
	if f.Kind == IntField {
		return f.Column + "::text"
	}
	return f.Column
}

// Entity is the identifier whitelist for one listable table.
type Entity struct {
	Name           string
	Table          string
	PrimaryKey     string
	Fields         []Field
	DefaultSort    string
	DefaultPerPage int
	// ExtraColumns are selected alongside Fields but can never be searched, sorted or
	// filtered on.
	ExtraColumns []string

	byName map[string]Field
}

// NewEntity indexes the fields of an entity by lower-cased logical name.
func NewEntity(e Entity) *Entity {
	e.byName = make(map[string]Field, len(e.Fields))
	for _, f := range e.Fields {
		e.byName[strings.ToLower(f.Name)] = f
	}
	if _, ok := e.byName[strings.ToLower(e.DefaultSort)]; !ok {
		panic("listing: default sort field " + e.DefaultSort + " is not defined for " + e.Name)
	}
	if e.DefaultPerPage <= 0 {
		e.DefaultPerPage = DefaultPerPage
	}
	return &e
}

// Field looks up a field by logical name, ignoring case.
func (e *Entity) Field(logical string) (Field, bool) {
	f, ok := e.byName[strings.ToLower(strings.TrimSpace(logical))]
	return f, ok
}

// Column resolves a logical name to its physical column. Unknown names report false.
func (e *Entity) Column(logical string) (string, bool) {
	f, ok := e.Field(logical)
	if !ok {
		return "", false
	}
	return f.Column, true
}

// SearchableFields returns the fields that take part in a searchBy=all query, in
// declaration order.
func (e *Entity) SearchableFields() []Field {
	fields := make([]Field, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Searchable {
			fields = append(fields, f)
		}
	}
	return fields
}

// Columns returns every selected physical column in declaration order.
func (e *Entity) Columns() []string {
	cols := make([]string, 0, len(e.Fields)+len(e.ExtraColumns))
	for _, f := range e.Fields {
		cols = append(cols, f.Column)
	}
	return append(cols, e.ExtraColumns...)
}
