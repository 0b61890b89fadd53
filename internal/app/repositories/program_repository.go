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

// ProgramRepository handles program database operations
type ProgramRepository struct {
	db Pool
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanProgram(row pgx.Row) (models.Program, error) {
	var p models.Program
	err := row.Scan(&p.ProgramCode, &p.ProgramName, &p.CollegeCode)
	return p, err
}

// writeError maps constraint violations raised by an insert or update.
func (r *ProgramRepository) writeError(err error) error {
	switch {
	case dberrors.IsUniqueViolation(err):
		return apperrors.ErrProgramAlreadyExists
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.NewValidationError("collegeCode", "college does not exist")
	}
	return nil
}

// Create inserts a new program
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	query, args, err := r.sb.Insert("programs").
		Columns("program_code", "program_name", "college_code").
		Values(program.ProgramCode, program.ProgramName, program.CollegeCode).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if mapped := r.writeError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Str("programCode", program.ProgramCode).Msg("Error creating program")
		return fmt.Errorf("error creating program: %w", err)
	}

	return nil
}

// GetByCode retrieves a program by code, ignoring case
func (r *ProgramRepository) GetByCode(ctx context.Context, code string) (*models.Program, error) {
	query, args, err := r.sb.Select(listing.Programs.Columns()...).
		From("programs").
		Where(keyEquals("program_code", code)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	program, err := scanProgram(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		logger.Error().Err(err).Str("programCode", code).Msg("Error getting program")
		return nil, fmt.Errorf("error getting program: %w", err)
	}

	return &program, nil
}

// ExistsByCode checks whether a program other than exclude uses code
func (r *ProgramRepository) ExistsByCode(ctx context.Context, code, exclude string) (bool, error) {
	exists, err := keyTaken(ctx, r.db, r.sb, "programs", "program_code", code, exclude)
	if err != nil {
		logger.Error().Err(err).Str("programCode", code).Msg("Error checking program existence")
		return false, err
	}
	return exists, nil
}

// Update replaces the program stored under code
func (r *ProgramRepository) Update(ctx context.Context, code string, program *models.Program) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		current, err := lockRow(ctx, tx, r.sb, "programs", "program_code", code, apperrors.ErrProgramNotFound)
		if err != nil {
			return err
		}

		taken, err := keyTaken(ctx, tx, r.sb, "programs", "program_code", program.ProgramCode, current)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrProgramAlreadyExists
		}

		query, args, err := r.sb.Update("programs").
			Set("program_code", program.ProgramCode).
			Set("program_name", program.ProgramName).
			Set("college_code", program.CollegeCode).
			Where(squirrel.Eq{"program_code": current}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update query: %w", err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			if mapped := r.writeError(err); mapped != nil {
				return mapped
			}
			return fmt.Errorf("error updating program: %w", err)
		}
		return nil
	})
	if err != nil && !apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrConflict, apperrors.ErrValidationFailed) {
		logger.Error().Err(err).Str("programCode", code).Msg("Error updating program")
	}
	return err
}

// Delete removes a program and detaches its students. Returns the number of detached students.
func (r *ProgramRepository) Delete(ctx context.Context, code string) (int64, error) {
	return CascadeDelete(ctx, r.db, ProgramCascade, code)
}

// List returns one page of programs
func (r *ProgramRepository) List(ctx context.Context, params listing.Params) (*listing.Result[models.Program], error) {
	res, err := listing.Run(ctx, r.db, listing.Programs.Prepare(params), scanProgram)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing programs")
		return nil, err
	}
	return res, nil
}

// Dropdown returns every program ordered by name
func (r *ProgramRepository) Dropdown(ctx context.Context) ([]models.Program, error) {
	query, args, err := r.sb.Select(listing.Programs.Columns()...).
		From("programs").
		OrderBy("program_name ASC", "program_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build dropdown query: %w", err)
	}

	programs, err := collect(ctx, r.db, query, args, scanProgram)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying program dropdown")
		return nil, fmt.Errorf("error querying programs: %w", err)
	}
	return programs, nil
}

// Count returns the number of programs
func (r *ProgramRepository) Count(ctx context.Context) (int64, error) {
	n, err := count(ctx, r.db, r.sb, "programs")
	if err != nil {
		logger.Error().Err(err).Msg("Error counting programs")
		return 0, err
	}
	return n, nil
}
