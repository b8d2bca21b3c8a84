// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"testing"

	companyErrors "github.com/hirewire/hirewire/companies/errors"
	"github.com/hirewire/hirewire/companies/models"
	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	jobmodels "github.com/hirewire/hirewire/jobs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestCompanyService_Create(t *testing.T) {
	companyRepo := new(MockCompanyRepository)
	jobRepo := new(MockJobRepository)
	svc := NewCompanyService(companyRepo, jobRepo)

	companyRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Company) bool {
		return c.Handle == "acme" && c.Name == "Acme Corp" && c.NumEmployees == 120
	})).Return(nil)

	company, err := svc.Create(context.Background(), &models.CreateCompanyRequest{
		Handle:       "acme",
		Name:         "Acme Corp",
		Description:  "makers of everything",
		NumEmployees: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, "acme", company.Handle)
	companyRepo.AssertExpectations(t)
}

func TestCompanyService_Get(t *testing.T) {
	t.Run("includes job postings", func(t *testing.T) {
		companyRepo := new(MockCompanyRepository)
		jobRepo := new(MockJobRepository)
		svc := NewCompanyService(companyRepo, jobRepo)

		companyRepo.On("FindByHandle", mock.Anything, "acme").Return(&models.Company{Handle: "acme", Name: "Acme Corp"}, nil)
		jobRepo.On("FindByCompany", mock.Anything, "acme").Return([]jobmodels.Job{
			{ID: 1, Title: "Engineer", CompanyHandle: "acme"},
		}, nil)

		got, err := svc.Get(context.Background(), "acme")
		require.NoError(t, err)
		assert.Equal(t, "acme", got.Handle)
		require.Len(t, got.Jobs, 1)
		assert.Equal(t, "Engineer", got.Jobs[0].Title)
	})

	t.Run("propagates not found", func(t *testing.T) {
		companyRepo := new(MockCompanyRepository)
		jobRepo := new(MockJobRepository)
		svc := NewCompanyService(companyRepo, jobRepo)

		companyRepo.On("FindByHandle", mock.Anything, "ghost").Return(nil, companyErrors.ErrCompanyNotFound)

		_, err := svc.Get(context.Background(), "ghost")
		assert.ErrorIs(t, err, companyErrors.ErrCompanyNotFound)
		jobRepo.AssertNotCalled(t, "FindByCompany")
	})
}

func TestCompanyService_Update(t *testing.T) {
	t.Run("collects set fields in fixed order", func(t *testing.T) {
		companyRepo := new(MockCompanyRepository)
		jobRepo := new(MockJobRepository)
		svc := NewCompanyService(companyRepo, jobRepo)

		wantFields := sqlbuilder.Fields{}.
			Add("name", "New Name").
			Add("numEmployees", 64)
		companyRepo.On("Update", mock.Anything, "acme", wantFields).
			Return(&models.Company{Handle: "acme", Name: "New Name", NumEmployees: 64}, nil)

		updated, err := svc.Update(context.Background(), "acme", &models.UpdateCompanyRequest{
			Name:         strPtr("New Name"),
			NumEmployees: intPtr(64),
		})
		require.NoError(t, err)
		assert.Equal(t, 64, updated.NumEmployees)
		companyRepo.AssertExpectations(t)
	})

	t.Run("empty request reaches the repository with no fields", func(t *testing.T) {
		companyRepo := new(MockCompanyRepository)
		jobRepo := new(MockJobRepository)
		svc := NewCompanyService(companyRepo, jobRepo)

		companyRepo.On("Update", mock.Anything, "acme", sqlbuilder.Fields{}).
			Return(nil, sqlbuilder.ErrNoFields)

		_, err := svc.Update(context.Background(), "acme", &models.UpdateCompanyRequest{})
		assert.ErrorIs(t, err, sqlbuilder.ErrNoFields)
	})
}

func TestCompanyService_Search(t *testing.T) {
	companyRepo := new(MockCompanyRepository)
	jobRepo := new(MockJobRepository)
	svc := NewCompanyService(companyRepo, jobRepo)

	filter := &models.CompanyFilter{Name: strPtr("net")}
	companyRepo.On("FindAll", mock.Anything, filter).Return([]models.Company{{Handle: "netcorp"}}, nil)

	got, err := svc.Search(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "netcorp", got[0].Handle)
}

func TestCompanyService_Delete(t *testing.T) {
	companyRepo := new(MockCompanyRepository)
	jobRepo := new(MockJobRepository)
	svc := NewCompanyService(companyRepo, jobRepo)

	companyRepo.On("Delete", mock.Anything, "acme").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "acme"))
	companyRepo.AssertExpectations(t)
}
