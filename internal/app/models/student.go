package models

// DefaultPhotoURL is reported for students without a stored photo.
const DefaultPhotoURL = "/student-icon.jpg"

// Student is an enrolled student, optionally attached to a Program.
type Student struct {
	StudentID   string  `json:"studentID" db:"student_id" example:"2024-0001"`
	FirstName   string  `json:"firstName" db:"first_name" example:"Maria"`
	LastName    string  `json:"lastName" db:"last_name" example:"Santos"`
	ProgramCode *string `json:"programCode" db:"program_code" example:"BSCS"` // NULL once detached
	YearLevel   int     `json:"yearLevel" db:"year_level" example:"2"`
	Gender      string  `json:"gender" db:"gender" example:"Female"`
	PhotoURL    *string `json:"photoUrl,omitempty" db:"photo_url"`
}

// Photo returns the stored photo URL or DefaultPhotoURL.
func (s *Student) Photo() string {
	if s.PhotoURL == nil || *s.PhotoURL == "" {
		return DefaultPhotoURL
	}
	return *s.PhotoURL
}
