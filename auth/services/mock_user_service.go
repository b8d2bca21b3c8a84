package services

import (
	"context"

	usermodels "github.com/hirewire/hirewire/users/models"
	userservices "github.com/hirewire/hirewire/users/services"
	"github.com/stretchr/testify/mock"
)

// MockUserService is a test double for the user service.
type MockUserService struct {
	mock.Mock
}

var _ userservices.UserService = (*MockUserService)(nil)

func (m *MockUserService) Create(ctx context.Context, req *usermodels.CreateUserRequest) (*usermodels.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usermodels.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*usermodels.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usermodels.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]usermodels.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usermodels.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, username string) (*usermodels.UserWithApplications, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usermodels.UserWithApplications), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, username string, req *usermodels.UpdateUserRequest) (*usermodels.User, error) {
	args := m.Called(ctx, username, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usermodels.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockUserService) Apply(ctx context.Context, username string, jobID int) error {
	args := m.Called(ctx, username, jobID)
	return args.Error(0)
}
