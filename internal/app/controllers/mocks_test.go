package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/listing"
	"github.com/yigit/registrar/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterGinValidators(); err != nil {
		panic(err)
	}
}

// envelope mirrors dto.APIResponse with a raw payload so tests can decode it per endpoint.
type envelope struct {
	Data    json.RawMessage  `json:"data"`
	Message string           `json:"message"`
	Error   *dto.ErrorDetail `json:"error"`
}

func perform(t *testing.T, r http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func strPtr(s string) *string { return &s }

type mockCollegeService struct{ mock.Mock }

func (m *mockCollegeService) CreateCollege(ctx context.Context, c *models.College) (*models.College, error) {
	args := m.Called(ctx, c)
	college, _ := args.Get(0).(*models.College)
	return college, args.Error(1)
}

func (m *mockCollegeService) GetCollege(ctx context.Context, code string) (*models.College, error) {
	args := m.Called(ctx, code)
	college, _ := args.Get(0).(*models.College)
	return college, args.Error(1)
}

func (m *mockCollegeService) UpdateCollege(ctx context.Context, code string, c *models.College) (*models.College, error) {
	args := m.Called(ctx, code, c)
	college, _ := args.Get(0).(*models.College)
	return college, args.Error(1)
}

func (m *mockCollegeService) DeleteCollege(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCollegeService) ListColleges(ctx context.Context, params listing.Params) (*listing.Result[models.College], error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*listing.Result[models.College])
	return res, args.Error(1)
}

func (m *mockCollegeService) CollegeDropdown(ctx context.Context) ([]models.College, error) {
	args := m.Called(ctx)
	colleges, _ := args.Get(0).([]models.College)
	return colleges, args.Error(1)
}

func (m *mockCollegeService) CountColleges(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockProgramService struct{ mock.Mock }

func (m *mockProgramService) CreateProgram(ctx context.Context, p *models.Program) (*models.Program, error) {
	args := m.Called(ctx, p)
	program, _ := args.Get(0).(*models.Program)
	return program, args.Error(1)
}

func (m *mockProgramService) GetProgram(ctx context.Context, code string) (*models.Program, error) {
	args := m.Called(ctx, code)
	program, _ := args.Get(0).(*models.Program)
	return program, args.Error(1)
}

func (m *mockProgramService) UpdateProgram(ctx context.Context, code string, p *models.Program) (*models.Program, error) {
	args := m.Called(ctx, code, p)
	program, _ := args.Get(0).(*models.Program)
	return program, args.Error(1)
}

func (m *mockProgramService) DeleteProgram(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProgramService) ListPrograms(ctx context.Context, params listing.Params) (*listing.Result[models.Program], error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*listing.Result[models.Program])
	return res, args.Error(1)
}

func (m *mockProgramService) ProgramDropdown(ctx context.Context) ([]models.Program, error) {
	args := m.Called(ctx)
	programs, _ := args.Get(0).([]models.Program)
	return programs, args.Error(1)
}

func (m *mockProgramService) CountPrograms(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockStudentService struct{ mock.Mock }

func (m *mockStudentService) CreateStudent(ctx context.Context, s *models.Student) (*models.Student, error) {
	args := m.Called(ctx, s)
	student, _ := args.Get(0).(*models.Student)
	return student, args.Error(1)
}

func (m *mockStudentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	args := m.Called(ctx, id)
	student, _ := args.Get(0).(*models.Student)
	return student, args.Error(1)
}

func (m *mockStudentService) UpdateStudent(ctx context.Context, id string, s *models.Student) (*models.Student, error) {
	args := m.Called(ctx, id, s)
	student, _ := args.Get(0).(*models.Student)
	return student, args.Error(1)
}

func (m *mockStudentService) DeleteStudent(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStudentService) ListStudents(ctx context.Context, params listing.Params) (*listing.Result[models.Student], error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*listing.Result[models.Student])
	return res, args.Error(1)
}

func (m *mockStudentService) CountStudents(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockStatsService struct{ mock.Mock }

func (m *mockStatsService) StudentsByProgram(ctx context.Context, collegeCode string) ([]models.ProgramCount, error) {
	args := m.Called(ctx, collegeCode)
	rows, _ := args.Get(0).([]models.ProgramCount)
	return rows, args.Error(1)
}

func (m *mockStatsService) StudentsByGender(ctx context.Context) ([]models.GenderCount, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.GenderCount)
	return rows, args.Error(1)
}

type mockAuthenticator struct{ mock.Mock }

func (m *mockAuthenticator) Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockAuthenticator) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthenticator) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) CreateUser(ctx context.Context, req *dto.SignupRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id int64, req *dto.UserUpdateRequest) (*models.User, error) {
	args := m.Called(ctx, id, req)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserService) ListUsers(ctx context.Context, params listing.Params) (*listing.Result[models.User], error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*listing.Result[models.User])
	return res, args.Error(1)
}
