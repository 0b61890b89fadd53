package dto

// TotalResponse carries a single row count.
type TotalResponse struct {
	Total int64 `json:"total" example:"120"`
}

// ProgramCount is the number of students enrolled in one program.
type ProgramCount struct {
	ProgramCode string `json:"programCode" example:"BSCS"`
	ProgramName string `json:"programName" example:"Bachelor of Science in Computer Science"`
	Count       int64  `json:"count" example:"42"`
}

// GenderCount is the number of students reporting one gender.
type GenderCount struct {
	Gender string `json:"gender" example:"Female"`
	Count  int64  `json:"count" example:"61"`
}
