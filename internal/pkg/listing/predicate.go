package listing

import "github.com/Masterminds/squirrel"

// Combine ANDs the filter predicates with the search predicate. It returns nil when there
// is nothing to filter on, meaning every row matches.
func Combine(filters []squirrel.Sqlizer, search squirrel.Sqlizer) squirrel.Sqlizer {
	parts := make(squirrel.And, 0, len(filters)+1)
	for _, f := range filters {
		if f != nil {
			parts = append(parts, f)
		}
	}
	if search != nil {
		parts = append(parts, search)
	}

	switch len(parts) {
	case 0:
		return nil
	case 1:
		return parts[0]
	default:
		return parts
	}
}
