package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Desc, ParseDirection("desc"))
	assert.Equal(t, Desc, ParseDirection(" DESC "))
	assert.Equal(t, Asc, ParseDirection("asc"))
	assert.Equal(t, Asc, ParseDirection(""))
	assert.Equal(t, Asc, ParseDirection("descending"))
	assert.Equal(t, Asc, ParseDirection("1; DROP TABLE x"))
}

func TestResolveSort(t *testing.T) {
	tests := []struct {
		name     string
		entity   *Entity
		sortBy   string
		order    string
		expected []string
	}{
		{"default college sort", Colleges, "", "", []string{"college_code ASC"}},
		{"college by name desc", Colleges, "collegeName", "desc", []string{"college_name DESC", "college_code ASC"}},
		{"default program sort", Programs, "", "asc", []string{"program_code ASC"}},
		{"program by college", Programs, "COLLEGECODE", "DESC", []string{"college_code DESC", "program_code ASC"}},
		{"default student sort", Students, "", "", []string{"student_id ASC"}},
		{"student by last name desc", Students, "lastName", "desc", []string{"last_name DESC", "student_id ASC"}},
		{"unknown falls back to default", Students, "nonexistent_field", "desc", []string{"student_id DESC"}},
		{"raw column name is not accepted", Students, "last_name", "", []string{"student_id ASC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entity.ResolveSort(tt.sortBy, tt.order).OrderBy())
		})
	}
}

func TestResolveSort_ReportsField(t *testing.T) {
	s := Students.ResolveSort("nonexistent_field", "")
	assert.Equal(t, FieldStudentID, s.Field)
	assert.Equal(t, "student_id", s.Column)
	assert.Empty(t, s.TieBreaker)
}
