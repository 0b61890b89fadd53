package models

// College is a top-level academic unit. CollegeCode is unique case-insensitively.
type College struct {
	CollegeCode string `json:"collegeCode" db:"college_code" example:"CCS"`
	CollegeName string `json:"collegeName" db:"college_name" example:"College of Computer Studies"`
}
