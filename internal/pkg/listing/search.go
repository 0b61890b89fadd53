package listing

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// SearchAll is the searchBy sentinel that matches the term against every searchable field.
const SearchAll = "all"

// escapeLikePattern escapes the LIKE meta characters so user input is matched literally.
// Backslash goes first because it is the escape character.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// containsPattern turns a search term into a case-folded substring pattern.
func containsPattern(term string) string {
	return "%" + escapeLikePattern(strings.ToLower(term)) + "%"
}

// SearchClause builds the search predicate for term. A searchBy naming a searchable field
// produces a single ILIKE; "all", an empty value or an unknown field produces an OR over
// every searchable field. An empty term produces nil.
func (e *Entity) SearchClause(term, searchBy string) squirrel.Sqlizer {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	pattern := containsPattern(term)

	if f, ok := e.Field(searchBy); ok && f.Searchable {
		return squirrel.ILike{f.MatchExpr(): pattern}
	}

	fields := e.SearchableFields()
	if len(fields) == 0 {
		return nil
	}
	or := make(squirrel.Or, 0, len(fields))
	for _, f := range fields {
		or = append(or, squirrel.ILike{f.MatchExpr(): pattern})
	}
	return or
}
