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

// StudentRepository is the storage the student service depends on.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	ExistsByID(ctx context.Context, id, exclude string) (bool, error)
	Update(ctx context.Context, id string, student *models.Student) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params listing.Params) (*listing.Result[models.Student], error)
	Count(ctx context.Context) (int64, error)
}

// ProgramLookup resolves a program code case-insensitively.
type ProgramLookup interface {
	GetByCode(ctx context.Context, code string) (*models.Program, error)
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, student *models.Student) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	ListStudents(ctx context.Context, params listing.Params) (*listing.Result[models.Student], error)
	CountStudents(ctx context.Context) (int64, error)
}

type studentServiceImpl struct {
	studentRepo StudentRepository
	programs    ProgramLookup
	list        ListOptions
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepository, programs ProgramLookup, list ListOptions) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		programs:    programs,
		list:        list,
	}
}

func validateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewValidationError("", "student is required")
	}

	student.StudentID = strings.TrimSpace(student.StudentID)
	student.FirstName = strings.TrimSpace(student.FirstName)
	student.LastName = strings.TrimSpace(student.LastName)
	student.Gender = strings.TrimSpace(student.Gender)
	student.ProgramCode = helpers.NullIfBlank(student.ProgramCode)
	student.PhotoURL = helpers.NullIfBlank(student.PhotoURL)

	if !validation.NewStringValidation(student.StudentID).WithPattern(validation.CompiledPatterns.StudentID).Validate() {
		return apperrors.NewValidationError("studentID", "student ID must match the format NNNN-NNNN")
	}

	names := []struct {
		field, label, value string
	}{
		{"firstName", "first name", student.FirstName},
		{"lastName", "last name", student.LastName},
	}
	for _, n := range names {
		if !validation.NewStringValidation(n.value).WithMaxLength(validation.PersonNameMaxLength).Validate() {
			return apperrors.NewValidationError(n.field,
				fmt.Sprintf("%s is required and must be at most %d characters", n.label, validation.PersonNameMaxLength))
		}
	}

	if !validation.NewNumericValidation(student.YearLevel).WithMin(validation.YearLevelMin).WithMax(validation.YearLevelMax).Validate() {
		return apperrors.NewValidationError("yearLevel",
			fmt.Sprintf("year level must be between %d and %d", validation.YearLevelMin, validation.YearLevelMax))
	}

	if !validation.NewStringValidation(student.Gender).WithMaxLength(validation.GenderMaxLength).Validate() {
		return apperrors.NewValidationError("gender",
			fmt.Sprintf("gender is required and must be at most %d characters", validation.GenderMaxLength))
	}

	if student.PhotoURL != nil && !validation.IsHTTPURL(*student.PhotoURL) {
		return apperrors.NewValidationError("photoUrl", "photo URL must be an http or https URL")
	}
	return nil
}

func (s *studentServiceImpl) resolveProgram(ctx context.Context, student *models.Student) error {
	if student.ProgramCode == nil {
		return nil
	}

	program, err := s.programs.GetByCode(ctx, *student.ProgramCode)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrProgramNotFound) {
			return apperrors.NewValidationError("programCode",
				fmt.Sprintf("program '%s' does not exist", *student.ProgramCode))
		}
		return fmt.Errorf("error resolving program: %w", err)
	}

	student.ProgramCode = &program.ProgramCode
	return nil
}

// CreateStudent creates a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.ExistsByID(ctx, student.StudentID, "")
	if err != nil {
		return nil, fmt.Errorf("error checking student ID: %w", err)
	}
	if exists {
		return nil, apperrors.ErrStudentIDAlreadyExists
	}

	if err := s.resolveProgram(ctx, student); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if apperrors.Is(err, apperrors.ErrConflict, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}
	return student, nil
}

// GetStudent retrieves a student by ID
func (s *studentServiceImpl) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// UpdateStudent replaces an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, student *models.Student) (*models.Student, error) {
	if err := validateStudent(student); err != nil {
		return nil, err
	}
	if err := s.resolveProgram(ctx, student); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, strings.TrimSpace(id), student); err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrConflict, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return student, nil
}

// DeleteStudent deletes a student
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	if err := s.studentRepo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound) {
			return err
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// ListStudents returns one page of students
func (s *studentServiceImpl) ListStudents(ctx context.Context, params listing.Params) (*listing.Result[models.Student], error) {
	return runList(ctx, s.list, listing.Students.Name, func(ctx context.Context) (*listing.Result[models.Student], error) {
		return s.studentRepo.List(ctx, params)
	})
}

// CountStudents returns the number of students
func (s *studentServiceImpl) CountStudents(ctx context.Context) (int64, error) {
	n, err := s.studentRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return n, nil
}
