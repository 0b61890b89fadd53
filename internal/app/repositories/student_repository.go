package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/db"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/dberrors"
	"github.com/yigit/registrar/internal/pkg/listing"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanStudent(row pgx.Row) (models.Student, error) {
	var s models.Student
	err := row.Scan(&s.StudentID, &s.FirstName, &s.LastName, &s.ProgramCode, &s.YearLevel, &s.Gender, &s.PhotoURL)
	return s, err
}

func (r *StudentRepository) writeError(err error) error {
	switch {
	case dberrors.IsUniqueViolation(err):
		return apperrors.ErrStudentIDAlreadyExists
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.NewValidationError("programCode", "program does not exist")
	case dberrors.IsCheckViolation(err):
		return studentCheckError(dberrors.ConstraintName(err))
	}
	return nil
}

// Check constraints on the students table, as named by PostgreSQL.
const (
	studentsIDCheck        = "students_student_id_check"
	studentsYearLevelCheck = "students_year_level_check"
)

func studentCheckError(constraint string) error {
	switch constraint {
	case studentsIDCheck:
		return apperrors.NewValidationError("studentID", "student ID must match the format NNNN-NNNN")
	case studentsYearLevelCheck:
		return apperrors.NewValidationError("yearLevel", "year level must be a positive integer")
	}
	return apperrors.NewValidationError("", "student record is invalid")
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Insert("students").
		Columns("student_id", "first_name", "last_name", "program_code", "year_level", "gender", "photo_url").
		Values(student.StudentID, student.FirstName, student.LastName, student.ProgramCode,
			student.YearLevel, student.Gender, student.PhotoURL).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if mapped := r.writeError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error creating student")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID, ignoring case
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	query, args, err := r.sb.Select(listing.Students.Columns()...).
		From("students").
		Where(keyEquals("student_id", id)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error getting student")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return &student, nil
}

// ExistsByID checks whether a student other than exclude uses id
func (r *StudentRepository) ExistsByID(ctx context.Context, id, exclude string) (bool, error) {
	exists, err := keyTaken(ctx, r.db, r.sb, "students", "student_id", id, exclude)
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error checking student existence")
		return false, err
	}
	return exists, nil
}

// Update replaces the student stored under id
func (r *StudentRepository) Update(ctx context.Context, id string, student *models.Student) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		current, err := lockRow(ctx, tx, r.sb, "students", "student_id", id, apperrors.ErrStudentNotFound)
		if err != nil {
			return err
		}

		taken, err := keyTaken(ctx, tx, r.sb, "students", "student_id", student.StudentID, current)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrStudentIDAlreadyExists
		}

		query, args, err := r.sb.Update("students").
			Set("student_id", student.StudentID).
			Set("first_name", student.FirstName).
			Set("last_name", student.LastName).
			Set("program_code", student.ProgramCode).
			Set("year_level", student.YearLevel).
			Set("gender", student.Gender).
			Set("photo_url", student.PhotoURL).
			Where(squirrel.Eq{"student_id": current}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update query: %w", err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			if mapped := r.writeError(err); mapped != nil {
				return mapped
			}
			return fmt.Errorf("error updating student: %w", err)
		}
		return nil
	})
	if err != nil && !apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrConflict, apperrors.ErrValidationFailed) {
		logger.Error().Err(err).Str("studentID", id).Msg("Error updating student")
	}
	return err
}

// Delete removes a student
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.sb.Delete("students").
		Where(keyEquals("student_id", id)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error deleting student")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// List returns one page of students
func (r *StudentRepository) List(ctx context.Context, params listing.Params) (*listing.Result[models.Student], error) {
	res, err := listing.Run(ctx, r.db, listing.Students.Prepare(params), scanStudent)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing students")
		return nil, err
	}
	return res, nil
}

// Count returns the number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	n, err := count(ctx, r.db, r.sb, "students")
	if err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return 0, err
	}
	return n, nil
}
