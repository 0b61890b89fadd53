package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

func authRouter(svc *mockAuthenticator, userID *int64) *gin.Engine {
	c := NewAuthController(svc, CookieOptions{Name: "access_token"}, zerolog.Nop())
	r := gin.New()
	g := r.Group("/auth")
	g.POST("/signup", c.Signup)
	g.POST("/login", c.Login)
	g.POST("/logout", c.Logout)
	g.GET("/ping", func(ctx *gin.Context) {
		if userID != nil {
			ctx.Set(middleware.ContextUserID, *userID)
		}
	}, c.Ping)
	return r
}

func TestAuthController_Signup(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantField  string
	}{
		{"created", `{"username":"registrar","email":"reg@school.edu","password":"secret123"}`, nil, http.StatusCreated, ""},
		{"short password", `{"username":"registrar","email":"reg@school.edu","password":"12345"}`, nil, http.StatusBadRequest, "password"},
		{"bad email", `{"username":"registrar","email":"nope","password":"secret123"}`, nil, http.StatusBadRequest, "email"},
		{"email taken", `{"username":"registrar","email":"reg@school.edu","password":"secret123"}`, apperrors.ErrEmailAlreadyExists, http.StatusConflict, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockAuthenticator)
			if tt.wantField == "" {
				if tt.err != nil {
					svc.On("Signup", mock.Anything, mock.Anything).Return(nil, tt.err)
				} else {
					svc.On("Signup", mock.Anything, &dto.SignupRequest{Username: "registrar", Email: "reg@school.edu", Password: "secret123"}).
						Return(&models.User{ID: 1, Username: "registrar", Email: "reg@school.edu"}, nil)
				}
			}

			w, env := perform(t, authRouter(svc, nil), http.MethodPost, "/auth/signup", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, env.Error.Field)
			}
			if w.Code == http.StatusCreated {
				assert.Equal(t, dto.UserResponse{ID: 1, Username: "registrar", Email: "reg@school.edu"},
					decodeData[dto.UserResponse](t, env))
				assert.NotContains(t, w.Body.String(), "password")
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	t.Run("sets http only cookie", func(t *testing.T) {
		svc := new(mockAuthenticator)
		svc.On("Login", mock.Anything, &dto.LoginRequest{Email: "reg@school.edu", Password: "secret123"}).
			Return(&dto.AuthResponse{AccessToken: "tok", TokenType: "Bearer", ExpiresIn: 3600}, nil)

		w, env := perform(t, authRouter(svc, nil), http.MethodPost, "/auth/login",
			`{"email":"reg@school.edu","password":"secret123"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tok", decodeData[dto.AuthResponse](t, env).AccessToken)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "tok", cookies[0].Value)
		assert.Equal(t, 3600, cookies[0].MaxAge)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := new(mockAuthenticator)
		svc.On("Login", mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidCredentials)

		w, env := perform(t, authRouter(svc, nil), http.MethodPost, "/auth/login",
			`{"email":"reg@school.edu","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeInvalidCredentials, env.Error.Code)
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestAuthController_Ping(t *testing.T) {
	id := int64(7)
	svc := new(mockAuthenticator)
	svc.On("CurrentUser", mock.Anything, id).Return(&models.User{ID: 7, Username: "registrar", Email: "reg@school.edu"}, nil)

	w, env := perform(t, authRouter(svc, &id), http.MethodGet, "/auth/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "registrar", decodeData[dto.UserResponse](t, env).Username)

	w, env = perform(t, authRouter(new(mockAuthenticator), nil), http.MethodGet, "/auth/ping", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeTokenNotFound, env.Error.Code)

	failing := new(mockAuthenticator)
	failing.On("CurrentUser", mock.Anything, id).Return(nil, errors.New("connection reset"))
	w, _ = perform(t, authRouter(failing, &id), http.MethodGet, "/auth/ping", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthController_Logout(t *testing.T) {
	w, env := perform(t, authRouter(new(mockAuthenticator), nil), http.MethodPost, "/auth/logout", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out", env.Message)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
