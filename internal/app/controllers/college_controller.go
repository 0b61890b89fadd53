// Package controllers handles HTTP request handling
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

// CollegeController handles college related HTTP requests
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

func collegeItem(c models.College) models.College { return c }

// CreateCollege handles the creation of a new college
// @Summary Create a new college
// @Description Creates a college with a unique, case-insensitive code
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param college body dto.CollegeRequest true "College information"
// @Success 201 {object} dto.APIResponse{data=models.College} "College created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 409 {object} dto.APIResponse "College code already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /colleges [post]
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var req dto.CollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	college, err := c.collegeService.CreateCollege(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(college, "College created"))
}

// GetCollege returns one college
// @Summary Get college by code
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Param code path string true "College code"
// @Success 200 {object} dto.APIResponse{data=models.College}
// @Failure 404 {object} dto.APIResponse "College not found"
// @Router /colleges/{code} [get]
func (c *CollegeController) GetCollege(ctx *gin.Context) {
	college, err := c.collegeService.GetCollege(ctx, ctx.Param("key"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(college, ""))
}

// UpdateCollege replaces a college's code and name
// @Summary Update college
// @Description Updates a college. Renaming the code is allowed when the new code is free.
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "College code"
// @Param college body dto.CollegeRequest true "College information"
// @Success 200 {object} dto.APIResponse{data=models.College}
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 404 {object} dto.APIResponse "College not found"
// @Failure 409 {object} dto.APIResponse "College code already exists"
// @Router /colleges/{code} [put]
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	var req dto.CollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	college, err := c.collegeService.UpdateCollege(ctx, ctx.Param("key"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(college, "College updated"))
}

// DeleteCollege deletes a college after detaching its programs
// @Summary Delete college
// @Description Deletes a college. Its programs are kept with no college.
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Param code path string true "College code"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse}
// @Failure 404 {object} dto.APIResponse "College not found"
// @Router /colleges/{code} [delete]
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	code := ctx.Param("key")
	detached, err := c.collegeService.DeleteCollege(ctx, code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DeleteResponse{
		Deleted:  code,
		Detached: detached,
		Message:  "College deleted and its programs unassigned",
	}, ""))
}

// ListColleges returns one page of colleges
// @Summary List colleges
// @Description Search, sort and paginate colleges
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term"
// @Param searchBy query string false "all, collegeCode or collegeName"
// @Param sortBy query string false "collegeCode or collegeName"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse[models.College]}
// @Router /colleges [get]
func (c *CollegeController) ListColleges(ctx *gin.Context) {
	params := helpers.ParseListParams(ctx, listing.Colleges)

	result, err := c.collegeService.ListColleges(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewListResponse(result, collegeItem), ""))
}

// CollegeDropdown returns every college as a code/name pair ordered by name
// @Summary College dropdown
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.DropdownItem}
// @Router /colleges/dropdown [get]
func (c *CollegeController) CollegeDropdown(ctx *gin.Context) {
	colleges, err := c.collegeService.CollegeDropdown(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.DropdownItem, 0, len(colleges))
	for _, college := range colleges {
		items = append(items, dto.DropdownItem{Code: college.CollegeCode, Name: college.CollegeName})
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, ""))
}

// CountColleges returns the number of colleges
// @Summary Total colleges
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.TotalResponse}
// @Router /colleges/total [get]
func (c *CollegeController) CountColleges(ctx *gin.Context) {
	total, err := c.collegeService.CountColleges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.TotalResponse{Total: total}, ""))
}
