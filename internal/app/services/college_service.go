package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/listing"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// CollegeRepository is the storage the college service depends on.
type CollegeRepository interface {
	Create(ctx context.Context, college *models.College) error
	GetByCode(ctx context.Context, code string) (*models.College, error)
	ExistsByCode(ctx context.Context, code, exclude string) (bool, error)
	Update(ctx context.Context, code string, college *models.College) error
	Delete(ctx context.Context, code string) (int64, error)
	List(ctx context.Context, params listing.Params) (*listing.Result[models.College], error)
	Dropdown(ctx context.Context) ([]models.College, error)
	Count(ctx context.Context) (int64, error)
}

// CollegeService defines the interface for college-related operations
type CollegeService interface {
	CreateCollege(ctx context.Context, college *models.College) (*models.College, error)
	GetCollege(ctx context.Context, code string) (*models.College, error)
	UpdateCollege(ctx context.Context, code string, college *models.College) (*models.College, error)
	DeleteCollege(ctx context.Context, code string) (int64, error)
	ListColleges(ctx context.Context, params listing.Params) (*listing.Result[models.College], error)
	CollegeDropdown(ctx context.Context) ([]models.College, error)
	CountColleges(ctx context.Context) (int64, error)
}

// collegeServiceImpl implements the CollegeService interface
type collegeServiceImpl struct {
	collegeRepo CollegeRepository
	list        ListOptions
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeRepo CollegeRepository, list ListOptions) CollegeService {
	return &collegeServiceImpl{
		collegeRepo: collegeRepo,
		list:        list,
	}
}

// validateCollege trims the college in place and checks it
func validateCollege(college *models.College) error {
	if college == nil {
		return apperrors.NewValidationError("", "college is required")
	}

	college.CollegeCode = strings.TrimSpace(college.CollegeCode)
	college.CollegeName = strings.TrimSpace(college.CollegeName)

	if !validation.NewStringValidation(college.CollegeCode).WithMaxLength(validation.CodeMaxLength).Validate() {
		return apperrors.NewValidationError("collegeCode",
			fmt.Sprintf("college code is required and must be at most %d characters", validation.CodeMaxLength))
	}
	if !validation.NewStringValidation(college.CollegeName).WithMaxLength(validation.NameMaxLength).Validate() {
		return apperrors.NewValidationError("collegeName",
			fmt.Sprintf("college name is required and must be at most %d characters", validation.NameMaxLength))
	}
	return nil
}

// CreateCollege creates a new college
func (s *collegeServiceImpl) CreateCollege(ctx context.Context, college *models.College) (*models.College, error) {
	if err := validateCollege(college); err != nil {
		return nil, err
	}

	exists, err := s.collegeRepo.ExistsByCode(ctx, college.CollegeCode, "")
	if err != nil {
		return nil, fmt.Errorf("error checking college code: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCollegeAlreadyExists
	}

	if err := s.collegeRepo.Create(ctx, college); err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating college: %w", err)
	}
	return college, nil
}

// GetCollege retrieves a college by code
func (s *collegeServiceImpl) GetCollege(ctx context.Context, code string) (*models.College, error) {
	college, err := s.collegeRepo.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCollegeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}
	return college, nil
}

// UpdateCollege replaces an existing college
func (s *collegeServiceImpl) UpdateCollege(ctx context.Context, code string, college *models.College) (*models.College, error) {
	if err := validateCollege(college); err != nil {
		return nil, err
	}

	if err := s.collegeRepo.Update(ctx, strings.TrimSpace(code), college); err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating college: %w", err)
	}
	return college, nil
}

// DeleteCollege deletes a college, detaching its programs first
func (s *collegeServiceImpl) DeleteCollege(ctx context.Context, code string) (int64, error) {
	detached, err := s.collegeRepo.Delete(ctx, strings.TrimSpace(code))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCollegeNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("error deleting college: %w", err)
	}

	s.list.Metrics.AddDetached(listing.Colleges.Name, detached)
	return detached, nil
}

// ListColleges returns one page of colleges
func (s *collegeServiceImpl) ListColleges(ctx context.Context, params listing.Params) (*listing.Result[models.College], error) {
	return runList(ctx, s.list, listing.Colleges.Name, func(ctx context.Context) (*listing.Result[models.College], error) {
		return s.collegeRepo.List(ctx, params)
	})
}

// CollegeDropdown returns every college ordered by name
func (s *collegeServiceImpl) CollegeDropdown(ctx context.Context) ([]models.College, error) {
	colleges, err := s.collegeRepo.Dropdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving colleges: %w", err)
	}
	return colleges, nil
}

// CountColleges returns the number of colleges
func (s *collegeServiceImpl) CountColleges(ctx context.Context) (int64, error) {
	n, err := s.collegeRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting colleges: %w", err)
	}
	return n, nil
}
