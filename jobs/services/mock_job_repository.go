package services

import (
	"context"

	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	"github.com/hirewire/hirewire/jobs/models"
	"github.com/hirewire/hirewire/jobs/repository"
	"github.com/stretchr/testify/mock"
)

// MockJobRepository is a test double for the job repository.
type MockJobRepository struct {
	mock.Mock
}

var _ repository.JobRepository = (*MockJobRepository)(nil)

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) FindAll(ctx context.Context, filter *models.JobFilter) ([]models.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id int) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) FindByCompany(ctx context.Context, handle string) ([]models.Job, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, id int, fields sqlbuilder.Fields) (*models.Job, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
