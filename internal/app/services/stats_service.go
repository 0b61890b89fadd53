package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/registrar/internal/app/models"
)

// StatsRepository runs the dashboard aggregates.
type StatsRepository interface {
	CountByProgram(ctx context.Context, collegeCode string) ([]models.ProgramCount, error)
	CountByGender(ctx context.Context) ([]models.GenderCount, error)
}

// StatsService provides dashboard statistics
type StatsService interface {
	StudentsByProgram(ctx context.Context, collegeCode string) ([]models.ProgramCount, error)
	StudentsByGender(ctx context.Context) ([]models.GenderCount, error)
}

type statsServiceImpl struct {
	statsRepo StatsRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService(statsRepo StatsRepository) StatsService {
	return &statsServiceImpl{statsRepo: statsRepo}
}

func (s *statsServiceImpl) StudentsByProgram(ctx context.Context, collegeCode string) ([]models.ProgramCount, error) {
	counts, err := s.statsRepo.CountByProgram(ctx, strings.TrimSpace(collegeCode))
	if err != nil {
		return nil, fmt.Errorf("error counting students by program: %w", err)
	}
	return counts, nil
}

func (s *statsServiceImpl) StudentsByGender(ctx context.Context) ([]models.GenderCount, error) {
	counts, err := s.statsRepo.CountByGender(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students by gender: %w", err)
	}
	return counts, nil
}
