package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/listing"
)

type mockCollegeRepo struct{ mock.Mock }

func (m *mockCollegeRepo) Create(ctx context.Context, c *models.College) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCollegeRepo) GetByCode(ctx context.Context, code string) (*models.College, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*models.College)
	return c, args.Error(1)
}

func (m *mockCollegeRepo) ExistsByCode(ctx context.Context, code, exclude string) (bool, error) {
	args := m.Called(ctx, code, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *mockCollegeRepo) Update(ctx context.Context, code string, c *models.College) error {
	return m.Called(ctx, code, c).Error(0)
}

func (m *mockCollegeRepo) Delete(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCollegeRepo) List(ctx context.Context, p listing.Params) (*listing.Result[models.College], error) {
	args := m.Called(ctx, p)
	res, _ := args.Get(0).(*listing.Result[models.College])
	return res, args.Error(1)
}

func (m *mockCollegeRepo) Dropdown(ctx context.Context) ([]models.College, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]models.College)
	return res, args.Error(1)
}

func (m *mockCollegeRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockProgramRepo struct{ mock.Mock }

func (m *mockProgramRepo) Create(ctx context.Context, p *models.Program) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProgramRepo) GetByCode(ctx context.Context, code string) (*models.Program, error) {
	args := m.Called(ctx, code)
	p, _ := args.Get(0).(*models.Program)
	return p, args.Error(1)
}

func (m *mockProgramRepo) ExistsByCode(ctx context.Context, code, exclude string) (bool, error) {
	args := m.Called(ctx, code, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *mockProgramRepo) Update(ctx context.Context, code string, p *models.Program) error {
	return m.Called(ctx, code, p).Error(0)
}

func (m *mockProgramRepo) Delete(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProgramRepo) List(ctx context.Context, p listing.Params) (*listing.Result[models.Program], error) {
	args := m.Called(ctx, p)
	res, _ := args.Get(0).(*listing.Result[models.Program])
	return res, args.Error(1)
}

func (m *mockProgramRepo) Dropdown(ctx context.Context) ([]models.Program, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]models.Program)
	return res, args.Error(1)
}

func (m *mockProgramRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockStudentRepo struct{ mock.Mock }

func (m *mockStudentRepo) Create(ctx context.Context, s *models.Student) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id string) (*models.Student, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*models.Student)
	return s, args.Error(1)
}

func (m *mockStudentRepo) ExistsByID(ctx context.Context, id, exclude string) (bool, error) {
	args := m.Called(ctx, id, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *mockStudentRepo) Update(ctx context.Context, id string, s *models.Student) error {
	return m.Called(ctx, id, s).Error(0)
}

func (m *mockStudentRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStudentRepo) List(ctx context.Context, p listing.Params) (*listing.Result[models.Student], error) {
	args := m.Called(ctx, p)
	res, _ := args.Get(0).(*listing.Result[models.Student])
	return res, args.Error(1)
}

func (m *mockStudentRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) List(ctx context.Context, p listing.Params) (*listing.Result[models.User], error) {
	args := m.Called(ctx, p)
	res, _ := args.Get(0).(*listing.Result[models.User])
	return res, args.Error(1)
}
