package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/helpers"
	"github.com/yigit/registrar/internal/pkg/listing"
)

// StudentController handles student related HTTP requests
type StudentController struct {
	studentService services.StudentService
	statsService   services.StatsService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, statsService services.StatsService) *StudentController {
	return &StudentController{
		studentService: studentService,
		statsService:   statsService,
	}
}

func studentItem(s models.Student) dto.StudentResponse { return dto.NewStudentResponse(&s) }

// CreateStudent handles the creation of a new student
// @Summary Create a new student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request format or unknown program"
// @Failure 409 {object} dto.APIResponse "Student ID already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewStudentResponse(student), "Student created"))
}

// GetStudent returns one student
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx, ctx.Param("key"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponse(student), ""))
}

// UpdateStudent replaces a student's fields
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param student body dto.StudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request format or unknown program"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 409 {object} dto.APIResponse "Student ID already exists"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, ctx.Param("key"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponse(student), "Student updated"))
}

// DeleteStudent deletes a student
// @Summary Delete student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id := ctx.Param("key")
	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DeleteResponse{
		Deleted: id,
		Message: "Student deleted",
	}, ""))
}

// ListStudents returns one page of students
// @Summary List students
// @Description Search, filter, sort and paginate students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term"
// @Param searchBy query string false "all, studentID, firstName, lastName, programCode, yearLevel or gender"
// @Param programCode query []string false "Program filter, repeated or comma-separated"
// @Param gender query []string false "Gender filter, repeated or comma-separated"
// @Param yearLevel query []string false "Year level filter, repeated or comma-separated"
// @Param sortBy query string false "Any student field"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse[dto.StudentResponse]}
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	params := helpers.ParseListParams(ctx, listing.Students,
		listing.FieldProgramCode, listing.FieldGender, listing.FieldYearLevel)

	result, err := c.studentService.ListStudents(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewListResponse(result, studentItem), ""))
}

// CountStudents returns the number of students
// @Summary Total students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.TotalResponse}
// @Router /students/total [get]
func (c *StudentController) CountStudents(ctx *gin.Context) {
	total, err := c.studentService.CountStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.TotalResponse{Total: total}, ""))
}

// CountByProgram returns the number of students per program
// @Summary Students per program
// @Description Programs with no students are reported with a zero count
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param collegeCode query string false "Restrict to one college"
// @Success 200 {object} dto.APIResponse{data=[]dto.ProgramCount}
// @Router /students/count-by-program [get]
func (c *StudentController) CountByProgram(ctx *gin.Context) {
	rows, err := c.statsService.StudentsByProgram(ctx, ctx.Query(listing.FieldCollegeCode))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	counts := make([]dto.ProgramCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, dto.ProgramCount{
			ProgramCode: row.ProgramCode,
			ProgramName: row.ProgramName,
			Count:       row.Count,
		})
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(counts, ""))
}

// CountByGender returns the number of students per gender
// @Summary Students per gender
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.GenderCount}
// @Router /students/count-by-gender [get]
func (c *StudentController) CountByGender(ctx *gin.Context) {
	rows, err := c.statsService.StudentsByGender(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	counts := make([]dto.GenderCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, dto.GenderCount{Gender: row.Gender, Count: row.Count})
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(counts, ""))
}
