package dto

import (
	"time"

	"github.com/yigit/registrar/internal/app/models"
)

// SignupRequest registers a new account.
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"registrar"`
	Email    string `json:"email" binding:"required,email" example:"registrar@school.edu"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"registrar@school.edu"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AuthResponse is returned after a successful login.
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType" example:"Bearer"`
	ExpiresIn   int          `json:"expiresIn" example:"86400"`
	User        UserResponse `json:"user"`
}

// UserResponse is the public part of a user account.
type UserResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"registrar"`
	Email    string `json:"email" example:"registrar@school.edu"`
}

// UserUpdateRequest replaces an account's username and email. An empty password keeps
// the current one.
type UserUpdateRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"registrar"`
	Email    string `json:"email" binding:"required,email" example:"registrar@school.edu"`
	Password string `json:"password" binding:"omitempty,min=6" example:"secret123"`
}

// UserDetailResponse adds the creation time to UserResponse.
type UserDetailResponse struct {
	UserResponse
	CreatedAt time.Time `json:"createdAt" example:"2024-06-01T08:00:00Z"`
}

// NewUserDetailResponse converts a User.
func NewUserDetailResponse(u models.User) UserDetailResponse {
	return UserDetailResponse{UserResponse: NewUserResponse(&u), CreatedAt: u.CreatedAt}
}

// NewUserResponse converts a User.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}
