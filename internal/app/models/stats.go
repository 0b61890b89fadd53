package models

// ProgramCount is the number of students enrolled in one program.
type ProgramCount struct {
	ProgramCode string `db:"program_code"`
	ProgramName string `db:"program_name"`
	Count       int64  `db:"count"`
}

// GenderCount is the number of students reporting one gender.
type GenderCount struct {
	Gender string `db:"gender"`
	Count  int64  `db:"count"`
}
