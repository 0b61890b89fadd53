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

// CollegeRepository handles college database operations
type CollegeRepository struct {
	db Pool
	sb squirrel.StatementBuilderType
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(db Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanCollege(row pgx.Row) (models.College, error) {
	var c models.College
	err := row.Scan(&c.CollegeCode, &c.CollegeName)
	return c, err
}

// Create inserts a new college
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	query, args, err := r.sb.Insert("colleges").
		Columns("college_code", "college_name").
		Values(college.CollegeCode, college.CollegeName).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCollegeAlreadyExists
		}
		logger.Error().Err(err).Str("collegeCode", college.CollegeCode).Msg("Error creating college")
		return fmt.Errorf("error creating college: %w", err)
	}

	return nil
}

// GetByCode retrieves a college by code, ignoring case
func (r *CollegeRepository) GetByCode(ctx context.Context, code string) (*models.College, error) {
	query, args, err := r.sb.Select(listing.Colleges.Columns()...).
		From("colleges").
		Where(keyEquals("college_code", code)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	college, err := scanCollege(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		logger.Error().Err(err).Str("collegeCode", code).Msg("Error getting college")
		return nil, fmt.Errorf("error getting college: %w", err)
	}

	return &college, nil
}

// ExistsByCode checks whether a college other than exclude uses code
func (r *CollegeRepository) ExistsByCode(ctx context.Context, code, exclude string) (bool, error) {
	exists, err := keyTaken(ctx, r.db, r.sb, "colleges", "college_code", code, exclude)
	if err != nil {
		logger.Error().Err(err).Str("collegeCode", code).Msg("Error checking college existence")
		return false, err
	}
	return exists, nil
}

// Update replaces the college stored under code. A rename is re-checked against every
// other college inside the same transaction.
func (r *CollegeRepository) Update(ctx context.Context, code string, college *models.College) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		current, err := lockRow(ctx, tx, r.sb, "colleges", "college_code", code, apperrors.ErrCollegeNotFound)
		if err != nil {
			return err
		}

		taken, err := keyTaken(ctx, tx, r.sb, "colleges", "college_code", college.CollegeCode, current)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrCollegeAlreadyExists
		}

		query, args, err := r.sb.Update("colleges").
			Set("college_code", college.CollegeCode).
			Set("college_name", college.CollegeName).
			Where(squirrel.Eq{"college_code": current}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update query: %w", err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrCollegeAlreadyExists
			}
			return fmt.Errorf("error updating college: %w", err)
		}
		return nil
	})
	if err != nil && !apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrConflict) {
		logger.Error().Err(err).Str("collegeCode", code).Msg("Error updating college")
	}
	return err
}

// Delete removes a college and detaches its programs. Returns the number of detached programs.
func (r *CollegeRepository) Delete(ctx context.Context, code string) (int64, error) {
	return CascadeDelete(ctx, r.db, CollegeCascade, code)
}

// List returns one page of colleges
func (r *CollegeRepository) List(ctx context.Context, params listing.Params) (*listing.Result[models.College], error) {
	res, err := listing.Run(ctx, r.db, listing.Colleges.Prepare(params), scanCollege)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing colleges")
		return nil, err
	}
	return res, nil
}

// Dropdown returns every college ordered by name
func (r *CollegeRepository) Dropdown(ctx context.Context) ([]models.College, error) {
	query, args, err := r.sb.Select(listing.Colleges.Columns()...).
		From("colleges").
		OrderBy("college_name ASC", "college_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build dropdown query: %w", err)
	}

	colleges, err := collect(ctx, r.db, query, args, scanCollege)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying college dropdown")
		return nil, fmt.Errorf("error querying colleges: %w", err)
	}
	return colleges, nil
}

// Count returns the number of colleges
func (r *CollegeRepository) Count(ctx context.Context) (int64, error) {
	n, err := count(ctx, r.db, r.sb, "colleges")
	if err != nil {
		logger.Error().Err(err).Msg("Error counting colleges")
		return 0, err
	}
	return n, nil
}
