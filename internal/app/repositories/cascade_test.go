package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

var (
	lockCollegeSQL    = regexp.QuoteMeta("SELECT college_code FROM colleges WHERE LOWER(college_code) = LOWER($1) FOR UPDATE")
	detachProgramsSQL = regexp.QuoteMeta("UPDATE programs SET college_code = NULL WHERE LOWER(college_code) = LOWER($1)")
	deleteCollegeSQL  = regexp.QuoteMeta("DELETE FROM colleges WHERE LOWER(college_code) = LOWER($1)")
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestCascadeDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("detaches children then deletes parent", func(t *testing.T) {
		mock := newMock(t)
		mock.MatchExpectationsInOrder(true)

		mock.ExpectBegin()
		mock.ExpectQuery(lockCollegeSQL).WithArgs("ccs").
			WillReturnRows(pgxmock.NewRows([]string{"college_code"}).AddRow("CCS"))
		mock.ExpectExec(detachProgramsSQL).WithArgs("CCS").WillReturnResult(pgxmock.NewResult("UPDATE", 2))
		mock.ExpectExec(deleteCollegeSQL).WithArgs("CCS").WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		detached, err := CascadeDelete(ctx, mock, CollegeCascade, "ccs")
		require.NoError(t, err)
		assert.Equal(t, int64(2), detached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing parent aborts before any mutation", func(t *testing.T) {
		mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockCollegeSQL).WithArgs("XYZ").WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		detached, err := CascadeDelete(ctx, mock, CollegeCascade, "XYZ")
		assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.Zero(t, detached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed delete rolls back the detach", func(t *testing.T) {
		mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockCollegeSQL).WithArgs("CCS").
			WillReturnRows(pgxmock.NewRows([]string{"college_code"}).AddRow("CCS"))
		mock.ExpectExec(detachProgramsSQL).WithArgs("CCS").WillReturnResult(pgxmock.NewResult("UPDATE", 2))
		mock.ExpectExec(deleteCollegeSQL).WithArgs("CCS").WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		detached, err := CascadeDelete(ctx, mock, CollegeCascade, "CCS")
		assert.ErrorContains(t, err, "error deleting college")
		assert.Zero(t, detached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("program cascade detaches students", func(t *testing.T) {
		mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT program_code FROM programs WHERE LOWER(program_code) = LOWER($1) FOR UPDATE")).
			WithArgs("bscs").
			WillReturnRows(pgxmock.NewRows([]string{"program_code"}).AddRow("BSCS"))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET program_code = NULL WHERE LOWER(program_code) = LOWER($1)")).
			WithArgs("BSCS").
			WillReturnResult(pgxmock.NewResult("UPDATE", 40))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM programs WHERE LOWER(program_code) = LOWER($1)")).
			WithArgs("BSCS").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		detached, err := CascadeDelete(ctx, mock, ProgramCascade, "bscs")
		require.NoError(t, err)
		assert.Equal(t, int64(40), detached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
