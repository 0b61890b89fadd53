package listing

import "strings"

// Direction is a resolved sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection reads an order parameter. Only "desc" (any case) sorts descending.
func ParseDirection(order string) Direction {
	if strings.EqualFold(strings.TrimSpace(order), "desc") {
		return Desc
	}
	return Asc
}

// Sort is a resolved ordering over whitelisted columns.
type Sort struct {
	Field     string
	Column    string
	Direction Direction
	// TieBreaker is the primary key column, set when Column is not already unique.
	TieBreaker string
}

// ResolveSort maps sortBy through the whitelist, falling back to the entity's default
// sort field when sortBy is missing or unknown.
func (e *Entity) ResolveSort(sortBy, order string) Sort {
	f, ok := e.Field(sortBy)
	if !ok {
		f, _ = e.Field(e.DefaultSort)
	}
	s := Sort{Field: f.Name, Column: f.Column, Direction: ParseDirection(order)}
	if f.Column != e.PrimaryKey {
		s.TieBreaker = e.PrimaryKey
	}
	return s
}

// OrderBy renders the ORDER BY terms.
func (s Sort) OrderBy() []string {
	terms := []string{s.Column + " " + string(s.Direction)}
	if s.TieBreaker != "" {
		terms = append(terms, s.TieBreaker+" "+string(Asc))
	}
	return terms
}
