package listing

// Logical field names shared with the HTTP layer.
const (
	FieldCollegeCode = "collegeCode"
	FieldCollegeName = "collegeName"
	FieldProgramCode = "programCode"
	FieldProgramName = "programName"
	FieldStudentID   = "studentID"
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldYearLevel   = "yearLevel"
	FieldGender      = "gender"
	FieldUserID      = "id"
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldCreatedAt   = "createdAt"
)

// Colleges lists the colleges table. Default sort: collegeCode.
var Colleges = NewEntity(Entity{
	Name:       "college",
	Table:      "colleges",
	PrimaryKey: "college_code",
	Fields: []Field{
		{Name: FieldCollegeCode, Column: "college_code", Searchable: true},
		{Name: FieldCollegeName, Column: "college_name", Searchable: true},
	},
	DefaultSort:    FieldCollegeCode,
	DefaultPerPage: 10,
})

// Programs lists the programs table. Default sort: programCode.
var Programs = NewEntity(Entity{
	Name:       "program",
	Table:      "programs",
	PrimaryKey: "program_code",
	Fields: []Field{
		{Name: FieldProgramCode, Column: "program_code", Searchable: true},
		{Name: FieldProgramName, Column: "program_name", Searchable: true},
		{Name: FieldCollegeCode, Column: "college_code", Searchable: true, Filterable: true},
	},
	DefaultSort:    FieldProgramCode,
	DefaultPerPage: 10,
})

// Students lists the students table. Default sort: studentID.
var Students = NewEntity(Entity{
	Name:       "student",
	Table:      "students",
	PrimaryKey: "student_id",
	Fields: []Field{
		{Name: FieldStudentID, Column: "student_id", Searchable: true},
		{Name: FieldFirstName, Column: "first_name", Searchable: true},
		{Name: FieldLastName, Column: "last_name", Searchable: true},
		{Name: FieldProgramCode, Column: "program_code", Searchable: true, Filterable: true},
		{Name: FieldYearLevel, Column: "year_level", Kind: IntField, Searchable: true, Filterable: true},
		{Name: FieldGender, Column: "gender", Searchable: true, Filterable: true},
	},
	DefaultSort:    FieldStudentID,
	DefaultPerPage: 10,
	ExtraColumns:   []string{"photo_url"},
})

// Users lists the accounts table. Only username and email are searched; the password
// hash is never selected. Default sort: username.
var Users = NewEntity(Entity{
	Name:       "user",
	Table:      "users",
	PrimaryKey: "id",
	Fields: []Field{
		{Name: FieldUserID, Column: "id", Kind: IntField},
		{Name: FieldUsername, Column: "username", Searchable: true},
		{Name: FieldEmail, Column: "email", Searchable: true},
		{Name: FieldCreatedAt, Column: "created_at"},
	},
	DefaultSort:    FieldUsername,
	DefaultPerPage: 10,
})
