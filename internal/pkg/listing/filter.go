package listing

import (
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
)

// FilterClause builds one "LOWER(expr) IN (...)" predicate per usable filter. Filters on
// unknown or non-filterable fields and filters with no non-blank values are dropped.
// Predicates are ordered by field name so the generated SQL is stable.
func (e *Entity) FilterClause(filters map[string][]string) []squirrel.Sqlizer {
	if len(filters) == 0 {
		return nil
	}

	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)

	// Keys that differ only by case address the same field.
	merged := make(map[string][]string, len(names))
	var fields []Field
	for _, name := range names {
		f, ok := e.Field(name)
		if !ok || !f.Filterable {
			continue
		}
		if _, seen := merged[f.Name]; !seen {
			fields = append(fields, f)
		}
		merged[f.Name] = append(merged[f.Name], filters[name]...)
	}

	var preds []squirrel.Sqlizer
	for _, f := range fields {
		values := foldValues(merged[f.Name])
		if len(values) == 0 {
			continue
		}
		preds = append(preds, squirrel.Eq{"LOWER(" + f.MatchExpr() + ")": values})
	}
	return preds
}

// foldValues trims, lower-cases and de-duplicates candidate values, keeping first-seen order.
func foldValues(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
