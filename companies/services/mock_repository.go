package services

import (
	"context"

	"github.com/hirewire/hirewire/companies/models"
	"github.com/hirewire/hirewire/companies/repository"
	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	jobmodels "github.com/hirewire/hirewire/jobs/models"
	jobRepository "github.com/hirewire/hirewire/jobs/repository"
	"github.com/stretchr/testify/mock"
)

// MockCompanyRepository is a test double for the company repository.
type MockCompanyRepository struct {
	mock.Mock
}

var _ repository.CompanyRepository = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, filter *models.CompanyFilter) ([]models.Company, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByHandle(ctx context.Context, handle string) (*models.Company, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, handle string, fields sqlbuilder.Fields) (*models.Company, error) {
	args := m.Called(ctx, handle, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}

// MockJobRepository is a test double for the job repository dependency.
type MockJobRepository struct {
	mock.Mock
}

var _ jobRepository.JobRepository = (*MockJobRepository)(nil)

func (m *MockJobRepository) Create(ctx context.Context, job *jobmodels.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) FindAll(ctx context.Context, filter *jobmodels.JobFilter) ([]jobmodels.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]jobmodels.Job), args.Error(1)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id int) (*jobmodels.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jobmodels.Job), args.Error(1)
}

func (m *MockJobRepository) FindByCompany(ctx context.Context, handle string) ([]jobmodels.Job, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]jobmodels.Job), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, id int, fields sqlbuilder.Fields) (*jobmodels.Job, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jobmodels.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
