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

// ProgramController handles program related HTTP requests
type ProgramController struct {
	programService services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

func programItem(p models.Program) models.Program { return p }

// CreateProgram handles the creation of a new program
// @Summary Create a new program
// @Description Creates a program. collegeCode may be omitted to leave the program unassigned.
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param program body dto.ProgramRequest true "Program information"
// @Success 201 {object} dto.APIResponse{data=models.Program}
// @Failure 400 {object} dto.APIResponse "Invalid request format or unknown college"
// @Failure 409 {object} dto.APIResponse "Program code already exists"
// @Router /programs [post]
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	program, err := c.programService.CreateProgram(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(program, "Program created"))
}

// GetProgram returns one program
// @Summary Get program by code
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param code path string true "Program code"
// @Success 200 {object} dto.APIResponse{data=models.Program}
// @Failure 404 {object} dto.APIResponse "Program not found"
// @Router /programs/{code} [get]
func (c *ProgramController) GetProgram(ctx *gin.Context) {
	program, err := c.programService.GetProgram(ctx, ctx.Param("key"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(program, ""))
}

// UpdateProgram replaces a program's fields
// @Summary Update program
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Program code"
// @Param program body dto.ProgramRequest true "Program information"
// @Success 200 {object} dto.APIResponse{data=models.Program}
// @Failure 400 {object} dto.APIResponse "Invalid request format or unknown college"
// @Failure 404 {object} dto.APIResponse "Program not found"
// @Failure 409 {object} dto.APIResponse "Program code already exists"
// @Router /programs/{code} [put]
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	var req dto.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	program, err := c.programService.UpdateProgram(ctx, ctx.Param("key"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(program, "Program updated"))
}

// DeleteProgram deletes a program after detaching its students
// @Summary Delete program
// @Description Deletes a program. Its students are kept with no program.
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param code path string true "Program code"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse}
// @Failure 404 {object} dto.APIResponse "Program not found"
// @Router /programs/{code} [delete]
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	code := ctx.Param("key")
	detached, err := c.programService.DeleteProgram(ctx, code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DeleteResponse{
		Deleted:  code,
		Detached: detached,
		Message:  "Program deleted and its students unassigned",
	}, ""))
}

// ListPrograms returns one page of programs
// @Summary List programs
// @Description Search, filter, sort and paginate programs
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term"
// @Param searchBy query string false "all, programCode, programName or collegeCode"
// @Param collegeCode query []string false "College filter, repeated or comma-separated"
// @Param sortBy query string false "programCode, programName or collegeCode"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse[models.Program]}
// @Router /programs [get]
func (c *ProgramController) ListPrograms(ctx *gin.Context) {
	params := helpers.ParseListParams(ctx, listing.Programs, listing.FieldCollegeCode)

	result, err := c.programService.ListPrograms(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewListResponse(result, programItem), ""))
}

// ProgramDropdown returns every program as a code/name pair ordered by name
// @Summary Program dropdown
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.DropdownItem}
// @Router /programs/dropdown [get]
func (c *ProgramController) ProgramDropdown(ctx *gin.Context) {
	programs, err := c.programService.ProgramDropdown(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.DropdownItem, 0, len(programs))
	for _, program := range programs {
		items = append(items, dto.DropdownItem{Code: program.ProgramCode, Name: program.ProgramName})
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, ""))
}

// CountPrograms returns the number of programs
// @Summary Total programs
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.TotalResponse}
// @Router /programs/total [get]
func (c *ProgramController) CountPrograms(ctx *gin.Context) {
	total, err := c.programService.CountPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.TotalResponse{Total: total}, ""))
}
