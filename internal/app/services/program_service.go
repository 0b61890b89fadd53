package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
	"github.com/yigit/registrar/internal/pkg/listing"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// ProgramRepository is the storage the program service depends on.
type ProgramRepository interface {
	Create(ctx context.Context, program *models.Program) error
	GetByCode(ctx context.Context, code string) (*models.Program, error)
	ExistsByCode(ctx context.Context, code, exclude string) (bool, error)
	Update(ctx context.Context, code string, program *models.Program) error
	Delete(ctx context.Context, code string) (int64, error)
	List(ctx context.Context, params listing.Params) (*listing.Result[models.Program], error)
	Dropdown(ctx context.Context) ([]models.Program, error)
	Count(ctx context.Context) (int64, error)
}

// CollegeLookup resolves a college code case-insensitively.
type CollegeLookup interface {
	GetByCode(ctx context.Context, code string) (*models.College, error)
}

// ProgramService defines the interface for program-related operations
type ProgramService interface {
	CreateProgram(ctx context.Context, program *models.Program) (*models.Program, error)
	GetProgram(ctx context.Context, code string) (*models.Program, error)
	UpdateProgram(ctx context.Context, code string, program *models.Program) (*models.Program, error)
	DeleteProgram(ctx context.Context, code string) (int64, error)
	ListPrograms(ctx context.Context, params listing.Params) (*listing.Result[models.Program], error)
	ProgramDropdown(ctx context.Context) ([]models.Program, error)
	CountPrograms(ctx context.Context) (int64, error)
}

type programServiceImpl struct {
	programRepo ProgramRepository
	colleges    CollegeLookup
	list        ListOptions
}

// NewProgramService creates a new program service instance
func NewProgramService(programRepo ProgramRepository, colleges CollegeLookup, list ListOptions) ProgramService {
	return &programServiceImpl{
		programRepo: programRepo,
		colleges:    colleges,
		list:        list,
	}
}

func validateProgram(program *models.Program) error {
	if program == nil {
		return apperrors.NewValidationError("", "program is required")
	}

	program.ProgramCode = strings.TrimSpace(program.ProgramCode)
	program.ProgramName = strings.TrimSpace(program.ProgramName)
	program.CollegeCode = helpers.NullIfBlank(program.CollegeCode)

	if !validation.NewStringValidation(program.ProgramCode).WithMaxLength(validation.CodeMaxLength).Validate() {
		return apperrors.NewValidationError("programCode",
			fmt.Sprintf("program code is required and must be at most %d characters", validation.CodeMaxLength))
	}
	if !validation.NewStringValidation(program.ProgramName).WithMaxLength(validation.NameMaxLength).Validate() {
		return apperrors.NewValidationError("programName",
			fmt.Sprintf("program name is required and must be at most %d characters", validation.NameMaxLength))
	}
	return nil
}

// resolveCollege replaces the program's college code with the stored spelling. An unknown
// college is a validation error on collegeCode.
func (s *programServiceImpl) resolveCollege(ctx context.Context, program *models.Program) error {
	if program.CollegeCode == nil {
		return nil
	}

	college, err := s.colleges.GetByCode(ctx, *program.CollegeCode)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCollegeNotFound) {
			return apperrors.NewValidationError("collegeCode",
				fmt.Sprintf("college '%s' does not exist", *program.CollegeCode))
		}
		return fmt.Errorf("error resolving college: %w", err)
	}

	program.CollegeCode = &college.CollegeCode
	return nil
}

// CreateProgram creates a new program
func (s *programServiceImpl) CreateProgram(ctx context.Context, program *models.Program) (*models.Program, error) {
	if err := validateProgram(program); err != nil {
		return nil, err
	}

	exists, err := s.programRepo.ExistsByCode(ctx, program.ProgramCode, "")
	if err != nil {
		return nil, fmt.Errorf("error checking program code: %w", err)
	}
	if exists {
		return nil, apperrors.ErrProgramAlreadyExists
	}

	if err := s.resolveCollege(ctx, program); err != nil {
		return nil, err
	}

	if err := s.programRepo.Create(ctx, program); err != nil {
		if apperrors.Is(err, apperrors.ErrConflict, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating program: %w", err)
	}
	return program, nil
}

// GetProgram retrieves a program by code
func (s *programServiceImpl) GetProgram(ctx context.Context, code string) (*models.Program, error) {
	program, err := s.programRepo.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrProgramNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}
	return program, nil
}

// UpdateProgram replaces an existing program
func (s *programServiceImpl) UpdateProgram(ctx context.Context, code string, program *models.Program) (*models.Program, error) {
	if err := validateProgram(program); err != nil {
		return nil, err
	}
	if err := s.resolveCollege(ctx, program); err != nil {
		return nil, err
	}

	if err := s.programRepo.Update(ctx, strings.TrimSpace(code), program); err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrConflict, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating program: %w", err)
	}
	return program, nil
}

// DeleteProgram deletes a program, detaching its students first
func (s *programServiceImpl) DeleteProgram(ctx context.Context, code string) (int64, error) {
	detached, err := s.programRepo.Delete(ctx, strings.TrimSpace(code))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrProgramNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("error deleting program: %w", err)
	}

	s.list.Metrics.AddDetached(listing.Programs.Name, detached)
	return detached, nil
}

// ListPrograms returns one page of programs
func (s *programServiceImpl) ListPrograms(ctx context.Context, params listing.Params) (*listing.Result[models.Program], error) {
	return runList(ctx, s.list, listing.Programs.Name, func(ctx context.Context) (*listing.Result[models.Program], error) {
		return s.programRepo.List(ctx, params)
	})
}

// ProgramDropdown returns every program ordered by name
func (s *programServiceImpl) ProgramDropdown(ctx context.Context) ([]models.Program, error) {
	programs, err := s.programRepo.Dropdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs: %w", err)
	}
	return programs, nil
}

// CountPrograms returns the number of programs
func (s *programServiceImpl) CountPrograms(ctx context.Context) (int64, error) {
	n, err := s.programRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting programs: %w", err)
	}
	return n, nil
}
