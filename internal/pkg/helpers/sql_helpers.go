package helpers

import "strings"

// NullIfBlank trims s and returns nil when nothing is left, so optional references are
// stored as SQL NULL instead of an empty string.
func NullIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

