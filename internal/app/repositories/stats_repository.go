package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// StatsRepository runs the dashboard aggregate queries
type StatsRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db DBTX) *StatsRepository {
	return &StatsRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// CountByProgram counts students per program, including programs with none. A non-empty
// collegeCode restricts the result to that college's programs.
func (r *StatsRepository) CountByProgram(ctx context.Context, collegeCode string) ([]models.ProgramCount, error) {
	sel := r.sb.Select("p.program_code", "p.program_name", "COUNT(s.student_id)").
		From("programs p").
		LeftJoin("students s ON s.program_code = p.program_code")
	if collegeCode != "" {
		sel = sel.Where(keyEquals("p.college_code", collegeCode))
	}

	query, args, err := sel.
		GroupBy("p.program_code", "p.program_name").
		OrderBy("p.program_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build program count query: %w", err)
	}

	counts, err := collect(ctx, r.db, query, args, func(row pgx.Row) (models.ProgramCount, error) {
		var c models.ProgramCount
		err := row.Scan(&c.ProgramCode, &c.ProgramName, &c.Count)
		return c, err
	})
	if err != nil {
		logger.Error().Err(err).Str("collegeCode", collegeCode).Msg("Error counting students by program")
		return nil, fmt.Errorf("error counting students by program: %w", err)
	}
	return counts, nil
}

// CountByGender counts students per gender
func (r *StatsRepository) CountByGender(ctx context.Context) ([]models.GenderCount, error) {
	query, args, err := r.sb.Select("gender", "COUNT(*)").
		From("students").
		GroupBy("gender").
		OrderBy("gender ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build gender count query: %w", err)
	}

	counts, err := collect(ctx, r.db, query, args, func(row pgx.Row) (models.GenderCount, error) {
		var c models.GenderCount
		err := row.Scan(&c.Gender, &c.Count)
		return c, err
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error counting students by gender")
		return nil, fmt.Errorf("error counting students by gender: %w", err)
	}
	return counts, nil
}
