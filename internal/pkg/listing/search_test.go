package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"plain", "plain"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeLikePattern(tt.in))
		})
	}
}

func TestSearchClause_EmptyTerm(t *testing.T) {
	assert.Nil(t, Students.SearchClause("", "all"))
	assert.Nil(t, Students.SearchClause("   ", "lastName"))
}

func TestSearchClause_SingleField(t *testing.T) {
	pred := Students.SearchClause("SMI", "lastName")
	require.NotNil(t, pred)

	sql, args, err := pred.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "last_name ILIKE ?", sql)
	assert.Equal(t, []interface{}{"%smi%"}, args)
}

func TestSearchClause_SingleIntField(t *testing.T) {
	sql, args, err := Students.SearchClause("2", "YEARLEVEL").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "year_level::text ILIKE ?", sql)
	assert.Equal(t, []interface{}{"%2%"}, args)
}

func TestSearchClause_All(t *testing.T) {
	sql, args, err := Students.SearchClause("smith", SearchAll).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"(student_id ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR program_code ILIKE ? OR year_level::text ILIKE ? OR gender ILIKE ?)",
		sql)
	require.Len(t, args, 6)
	for _, a := range args {
		assert.Equal(t, "%smith%", a)
	}
}

func TestSearchClause_UnknownSearchByFallsBackToAll(t *testing.T) {
	sql, args, err := Colleges.SearchClause("ccs", "nonexistent_field").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(college_code ILIKE ? OR college_name ILIKE ?)", sql)
	assert.Equal(t, []interface{}{"%ccs%", "%ccs%"}, args)
}

func TestSearchClause_WildcardsAreLiteral(t *testing.T) {
	_, args, err := Programs.SearchClause("50%_off", "programName").ToSql()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{`%50\%\_off%`}, args)
}
