package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
	"github.com/yigit/registrar/internal/pkg/listing"
)

// UserController handles account administration requests
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// userID parses the :id path parameter. It reports a bad request itself when the ID is not a positive integer.
func userID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("user ID must be a positive integer"))
		return 0, false
	}
	return id, true
}

// CreateUser creates an account
// @Summary Create a user
// @Description Creates an account with a unique, case-insensitive username and email
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body dto.SignupRequest true "Account information"
// @Success 201 {object} dto.APIResponse{data=dto.UserDetailResponse} "User created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 409 {object} dto.APIResponse "Email or username already exists"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.CreateUser(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewUserDetailResponse(*user), "User created"))
}

// GetUser returns one account
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserDetailResponse}
// @Failure 400 {object} dto.APIResponse "Invalid user ID"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := userID(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetUser(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserDetailResponse(*user), ""))
}

// UpdateUser replaces an account's username and email
// @Summary Update user
// @Description Updates username and email. The password changes only when a new one is given.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body dto.UserUpdateRequest true "Account information"
// @Success 200 {object} dto.APIResponse{data=dto.UserDetailResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Failure 409 {object} dto.APIResponse "Email or username already exists"
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := userID(ctx)
	if !ok {
		return
	}

	var req dto.UserUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.UpdateUser(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserDetailResponse(*user), "User updated"))
}

// DeleteUser removes an account
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse}
// @Failure 400 {object} dto.APIResponse "Invalid user ID"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := userID(ctx)
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DeleteResponse{
		Deleted: strconv.FormatInt(id, 10),
		Message: "User deleted",
	}, ""))
}

// ListUsers returns one page of accounts
// @Summary List users
// @Description Search, sort and paginate accounts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term"
// @Param searchBy query string false "all, username or email"
// @Param sortBy query string false "id, username, email or createdAt"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse[dto.UserDetailResponse]}
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	params := helpers.ParseListParams(ctx, listing.Users)

	result, err := c.userService.ListUsers(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewListResponse(result, dto.NewUserDetailResponse), ""))
}
