package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/auth"
	"github.com/yigit/registrar/internal/pkg/listing"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// UserStore is the account storage the user administration service depends on.
type UserStore interface {
	UserRepository
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params listing.Params) (*listing.Result[models.User], error)
}

// UserService defines the interface for account administration
type UserService interface {
	CreateUser(ctx context.Context, req *dto.SignupRequest) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UserUpdateRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context, params listing.Params) (*listing.Result[models.User], error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo   UserStore
	list       ListOptions
	bcryptCost int
	logger     zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo UserStore, list ListOptions, bcryptCost int, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo:   userRepo,
		list:       list,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// validateAccount trims username and email in place and checks them
func validateAccount(username, email *string) error {
	*username = strings.TrimSpace(*username)
	*email = strings.TrimSpace(*email)

	if !validation.NewStringValidation(*username).
		WithMinLength(validation.UsernameMinLength).
		WithMaxLength(validation.UsernameMaxLength).
		Validate() {
		return apperrors.NewValidationError("username", fmt.Sprintf("username must be between %d and %d characters",
			validation.UsernameMinLength, validation.UsernameMaxLength))
	}
	if !validation.NewStringValidation(*email).WithPattern(validation.CompiledPatterns.Email).Validate() {
		return apperrors.NewValidationError("email", "email address is invalid")
	}
	return nil
}

// validatePassword checks the minimum length. An empty password passes unless required.
func validatePassword(password string, required bool) error {
	if !validation.NewStringValidation(password).
		WithRequired(required).
		WithMinLength(validation.PasswordMinLength).
		Validate() {
		return apperrors.NewValidationError("password",
			fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength))
	}
	return nil
}

// createAccount validates req, checks that email and username are free and stores the hashed account.
func createAccount(ctx context.Context, repo UserRepository, req *dto.SignupRequest, cost int) (*models.User, error) {
	if err := validateAccount(&req.Username, &req.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password, true); err != nil {
		return nil, err
	}

	exists, err := repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	exists, err = repo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	hash, err := auth.HashPasswordWithCost(req.Password, cost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := repo.Create(ctx, user); err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// CreateUser creates an account on behalf of an authenticated user
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.SignupRequest) (*models.User, error) {
	user, err := createAccount(ctx, s.userRepo, req, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User created")
	return user, nil
}

// GetUser retrieves an account by ID
func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// UpdateUser replaces username and email, and the password when one is given
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UserUpdateRequest) (*models.User, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "user is required")
	}
	if err := validateAccount(&req.Username, &req.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password, false); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
	}
	if req.Password != "" {
		hash, err := auth.HashPasswordWithCost(req.Password, s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	s.logger.Info().Int64("userID", id).Bool("passwordChanged", req.Password != "").Msg("User updated")
	user.PasswordHash = ""
	return user, nil
}

// DeleteUser removes an account
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("error deleting user: %w", err)
	}

	s.logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}

// ListUsers returns one page of accounts
func (s *userServiceImpl) ListUsers(ctx context.Context, params listing.Params) (*listing.Result[models.User], error) {
	return runList(ctx, s.list, listing.Users.Name, func(ctx context.Context) (*listing.Result[models.User], error) {
		return s.userRepo.List(ctx, params)
	})
}
