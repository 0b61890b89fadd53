package dto

import (
	"strings"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// StudentRequest is the body of student create and update requests.
type StudentRequest struct {
	StudentID   string  `json:"studentID" binding:"required,studentid" example:"2024-0001"`
	FirstName   string  `json:"firstName" binding:"required,max=50" example:"Maria"`
	LastName    string  `json:"lastName" binding:"required,max=50" example:"Santos"`
	ProgramCode *string `json:"programCode" binding:"omitempty,max=10" example:"BSCS"`
	YearLevel   int     `json:"yearLevel" binding:"required,min=1,max=10" example:"2"`
	Gender      string  `json:"gender" binding:"required,max=20" example:"Female"`
	PhotoURL    *string `json:"photoUrl" binding:"omitempty,httpurl" example:"https://cdn.example.com/2024-0001.png"`
}

// ToModel converts the request into a trimmed Student.
func (r StudentRequest) ToModel() *models.Student {
	return &models.Student{
		StudentID:   strings.TrimSpace(r.StudentID),
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		ProgramCode: helpers.NullIfBlank(r.ProgramCode),
		YearLevel:   r.YearLevel,
		Gender:      strings.TrimSpace(r.Gender),
		PhotoURL:    helpers.NullIfBlank(r.PhotoURL),
	}
}

// StudentResponse is the public representation of a student. PhotoURL is never empty.
type StudentResponse struct {
	StudentID   string  `json:"studentID" example:"2024-0001"`
	FirstName   string  `json:"firstName" example:"Maria"`
	LastName    string  `json:"lastName" example:"Santos"`
	ProgramCode *string `json:"programCode" example:"BSCS"`
	YearLevel   int     `json:"yearLevel" example:"2"`
	Gender      string  `json:"gender" example:"Female"`
	PhotoURL    string  `json:"photoUrl" example:"/student-icon.jpg"`
}

// NewStudentResponse converts a Student, substituting the default photo.
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		StudentID:   s.StudentID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		ProgramCode: s.ProgramCode,
		YearLevel:   s.YearLevel,
		Gender:      s.Gender,
		PhotoURL:    s.Photo(),
	}
}
