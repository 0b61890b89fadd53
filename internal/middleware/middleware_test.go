package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/auth"
	"github.com/yigit/registrar/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterGinValidators(); err != nil {
		panic(err)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body.Error
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
		wantMsg    string
		wantField  string
	}{
		{"not found", apperrors.ErrCollegeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "college not found", ""},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrStudentNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "student not found", ""},
		{"conflict", apperrors.ErrProgramAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "program code already exists", ""},
		{"validation", apperrors.NewValidationError("yearLevel", "year level must be between 1 and 10"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "year level must be between 1 and 10", "yearLevel"},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials", ""},
		{"expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired", ""},
		{"rate limited", apperrors.ErrTooManyRequests, http.StatusTooManyRequests, dto.ErrorCodeTooManyRequests, "Too many requests", ""},
		{"storage failure", errors.New("pq: connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			detail := decodeError(t, w)
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.Equal(t, tt.wantMsg, detail.Message)
			assert.Equal(t, tt.wantField, detail.Field)
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestHandleAPIError_Binding(t *testing.T) {
	type request struct {
		StudentID string `json:"studentID" binding:"required,studentid"`
		YearLevel int    `json:"yearLevel" binding:"required,min=1,max=10"`
	}

	r := gin.New()
	r.POST("/students", func(c *gin.Context) {
		var req request
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleAPIError(c, err)
			return
		}
		c.Status(http.StatusCreated)
	})

	tests := []struct {
		name      string
		body      string
		wantCode  dto.ErrorCode
		wantField string
	}{
		{"bad id", `{"studentID":"2024-01","yearLevel":1}`, dto.ErrorCodeValidationFailed, "studentID"},
		{"year out of range", `{"studentID":"2024-0001","yearLevel":11}`, dto.ErrorCodeValidationFailed, "yearLevel"},
		{"year not an integer", `{"studentID":"2024-0001","yearLevel":"two"}`, dto.ErrorCodeValidationFailed, "yearLevel"},
		{"malformed", `{"studentID":`, dto.ErrorCodeBadRequest, ""},
		{"empty body", ``, dto.ErrorCodeBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			detail := decodeError(t, w)
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.Equal(t, tt.wantField, detail.Field)
		})
	}
}

func TestJWTAuth(t *testing.T) {
	cfg := auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"}
	jwtService := auth.NewJWTService(cfg)
	user := &models.User{ID: 3, Username: "registrar", Email: "reg@school.edu"}
	token, _, err := jwtService.GenerateAccessToken(user)
	require.NoError(t, err)

	expiredCfg := cfg
	expiredCfg.AccessTokenExp = -time.Minute
	expired, _, err := auth.NewJWTService(expiredCfg).GenerateAccessToken(user)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", NewAuthMiddleware(jwtService, "access_token").JWTAuth(), func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		require.True(t, ok)
		c.String(http.StatusOK, "%d", id)
	})

	tests := []struct {
		name       string
		prepare    func(req *http.Request)
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"bearer header", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK, ""},
		{"cookie", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "access_token", Value: token}) }, http.StatusOK, ""},
		{"missing", func(req *http.Request) {}, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound},
		{"expired", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+expired) }, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"garbage", func(req *http.Request) { req.Header.Set("Authorization", "Basic abc") }, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.prepare(req)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "3", w.Body.String())
				return
			}
			assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps the caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(60, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "clients are limited independently")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"))

	now = now.Add(10 * time.Minute)
	l.Allow("10.0.0.3")
	assert.NotContains(t, l.visitors, "10.0.0.2")
}

func TestRateLimiter_Middleware(t *testing.T) {
	l := NewRateLimiter(20, 1)
	r := gin.New()
	r.POST("/auth/login", l.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3", w.Header().Get("Retry-After"))
}
