package dto

import (
	"strings"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// ProgramRequest is the body of program create and update requests. An empty or missing
// collegeCode leaves the program without a college.
type ProgramRequest struct {
	ProgramCode string  `json:"programCode" binding:"required,max=10" example:"BSCS"`
	ProgramName string  `json:"programName" binding:"required,max=100" example:"Bachelor of Science in Computer Science"`
	CollegeCode *string `json:"collegeCode" binding:"omitempty,max=10" example:"CCS"`
}

// ToModel converts the request into a trimmed Program.
func (r ProgramRequest) ToModel() *models.Program {
	return &models.Program{
		ProgramCode: strings.TrimSpace(r.ProgramCode),
		ProgramName: strings.TrimSpace(r.ProgramName),
		CollegeCode: helpers.NullIfBlank(r.CollegeCode),
	}
}
