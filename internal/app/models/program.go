package models

// Program is a degree program, optionally owned by a College.
type Program struct {
	ProgramCode string  `json:"programCode" db:"program_code" example:"BSCS"`
	ProgramName string  `json:"programName" db:"program_name" example:"Bachelor of Science in Computer Science"`
	CollegeCode *string `json:"collegeCode" db:"college_code" example:"CCS"` // NULL once detached
}
