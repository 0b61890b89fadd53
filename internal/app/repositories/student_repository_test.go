package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/listing"
)

func strPtr(s string) *string { return &s }

var studentColumns = []string{"student_id", "first_name", "last_name", "program_code", "year_level", "gender", "photo_url"}

func TestStudentRepository_Create(t *testing.T) {
	insertSQL := regexp.QuoteMeta("INSERT INTO students (student_id,first_name,last_name,program_code,year_level,gender,photo_url) VALUES ($1,$2,$3,$4,$5,$6,$7)")
	student := &models.Student{
		StudentID:   "2024-0001",
		FirstName:   "Maria",
		LastName:    "Santos",
		ProgramCode: strPtr("BSCS"),
		YearLevel:   2,
		Gender:      "Female",
	}

	tests := []struct {
		name      string
		execErr   error
		wantErr   error
		wantField string
		wantMsg   string
	}{
		{name: "inserted"},
		{name: "duplicate id", execErr: &pgconn.PgError{Code: "23505"}, wantErr: apperrors.ErrStudentIDAlreadyExists},
		{name: "unknown program", execErr: &pgconn.PgError{Code: "23503"}, wantErr: apperrors.ErrValidationFailed, wantField: "programCode"},
		{name: "year level check", execErr: &pgconn.PgError{Code: "23514", ConstraintName: "students_year_level_check"}, wantErr: apperrors.ErrValidationFailed, wantField: "yearLevel", wantMsg: "year level must be a positive integer"},
		{name: "student id check", execErr: &pgconn.PgError{Code: "23514", ConstraintName: "students_student_id_check"}, wantErr: apperrors.ErrValidationFailed, wantField: "studentID", wantMsg: "student ID must match the format NNNN-NNNN"},
		{name: "other check", execErr: &pgconn.PgError{Code: "23514", ConstraintName: "students_gender_check"}, wantErr: apperrors.ErrValidationFailed, wantMsg: "student record is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			exp := mock.ExpectExec(insertSQL).
				WithArgs("2024-0001", "Maria", "Santos", pgxmock.AnyArg(), 2, "Female", pgxmock.AnyArg())
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			err := NewStudentRepository(mock).Create(context.Background(), student)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantField, apperrors.FieldOf(err))
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, apperrors.UserMessage(err))
					assert.NotContains(t, apperrors.UserMessage(err), "_check")
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStudentRepository_GetByID(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT student_id, first_name, last_name, program_code, year_level, gender, photo_url FROM students WHERE LOWER(student_id) = LOWER($1)")).
		WithArgs("2024-0001").
		WillReturnRows(pgxmock.NewRows(studentColumns).AddRow("2024-0001", "Maria", "Santos", nil, 3, "Female", nil))

	s, err := NewStudentRepository(mock).GetByID(context.Background(), "2024-0001")
	require.NoError(t, err)
	assert.Nil(t, s.ProgramCode)
	assert.Equal(t, 3, s.YearLevel)
	assert.Equal(t, models.DefaultPhotoURL, s.Photo())
}

func TestStudentRepository_Delete(t *testing.T) {
	deleteSQL := regexp.QuoteMeta("DELETE FROM students WHERE LOWER(student_id) = LOWER($1)")

	t.Run("deleted", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(deleteSQL).WithArgs("2024-0001").WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, NewStudentRepository(mock).Delete(context.Background(), "2024-0001"))
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(deleteSQL).WithArgs("2024-9999").WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, NewStudentRepository(mock).Delete(context.Background(), "2024-9999"), apperrors.ErrStudentNotFound)
	})
}

func TestStudentRepository_List(t *testing.T) {
	mock := newMock(t)
	mock.MatchExpectationsInOrder(true)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM students WHERE (LOWER(gender) IN ($1) AND LOWER(year_level::text) IN ($2,$3))")).
		WithArgs("female", "1", "2").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(6)))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY last_name DESC, student_id ASC LIMIT 5 OFFSET 0")).
		WithArgs("female", "1", "2").
		WillReturnRows(pgxmock.NewRows(studentColumns).
			AddRow("2024-0003", "Ana", "Zamora", strPtr("BSCS"), 1, "Female", nil).
			AddRow("2024-0001", "Maria", "Santos", strPtr("BSIT"), 2, "Female", strPtr("https://cdn.example.com/m.jpg")))

	res, err := NewStudentRepository(mock).List(context.Background(), listing.Params{
		SortBy:  "lastName",
		Order:   "desc",
		Page:    1,
		PerPage: 5,
		Filters: map[string][]string{
			listing.FieldGender:    {"Female"},
			listing.FieldYearLevel: {"1", "2"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Total)
	assert.Equal(t, 2, res.Pages)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Zamora", res.Items[0].LastName)
	assert.Equal(t, "https://cdn.example.com/m.jpg", res.Items[1].Photo())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramRepository_CreateUnknownCollege(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO programs (program_code,program_name,college_code) VALUES ($1,$2,$3)")).
		WithArgs("BSCS", "Computer Science", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := NewProgramRepository(mock).Create(context.Background(), &models.Program{
		ProgramCode: "BSCS",
		ProgramName: "Computer Science",
		CollegeCode: strPtr("NOPE"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "collegeCode", apperrors.FieldOf(err))
}

func TestProgramRepository_UpdateKeepsCode(t *testing.T) {
	mock := newMock(t)
	mock.MatchExpectationsInOrder(true)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT program_code FROM programs WHERE LOWER(program_code) = LOWER($1) FOR UPDATE")).
		WithArgs("bscs").
		WillReturnRows(pgxmock.NewRows([]string{"program_code"}).AddRow("BSCS"))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("BSCS", "BSCS").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE programs SET program_code = $1, program_name = $2, college_code = $3 WHERE program_code = $4")).
		WithArgs("BSCS", "Computer Science", pgxmock.AnyArg(), "BSCS").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := NewProgramRepository(mock).Update(context.Background(), "bscs", &models.Program{
		ProgramCode: "BSCS",
		ProgramName: "Computer Science",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
