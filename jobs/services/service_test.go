// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"testing"

	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	jobErrors "github.com/hirewire/hirewire/jobs/errors"
	"github.com/hirewire/hirewire/jobs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestJobService_Create(t *testing.T) {
	t.Run("fills in generated id", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		svc := NewJobService(jobRepo)

		jobRepo.On("Create", mock.Anything, mock.MatchedBy(func(j *models.Job) bool {
			return j.Title == "Engineer" && j.CompanyHandle == "acme"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Job).ID = 7
		}).Return(nil)

		job, err := svc.Create(context.Background(), &models.CreateJobRequest{
			Title:         "Engineer",
			Salary:        120000,
			Equity:        0.02,
			CompanyHandle: "acme",
		})
		require.NoError(t, err)
		assert.Equal(t, 7, job.ID)
	})

	t.Run("propagates unknown company", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		svc := NewJobService(jobRepo)

		jobRepo.On("Create", mock.Anything, mock.Anything).Return(jobErrors.ErrCompanyNotFound)

		_, err := svc.Create(context.Background(), &models.CreateJobRequest{
			Title:         "Engineer",
			CompanyHandle: "ghost",
		})
		assert.ErrorIs(t, err, jobErrors.ErrCompanyNotFound)
	})
}

func TestJobService_Update(t *testing.T) {
	t.Run("collects set fields in fixed order", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		svc := NewJobService(jobRepo)

		wantFields := sqlbuilder.Fields{}.
			Add("title", "Staff Engineer").
			Add("salary", 150000)
		jobRepo.On("Update", mock.Anything, 7, wantFields).
			Return(&models.Job{ID: 7, Title: "Staff Engineer", Salary: 150000}, nil)

		updated, err := svc.Update(context.Background(), 7, &models.UpdateJobRequest{
			Title:  strPtr("Staff Engineer"),
			Salary: intPtr(150000),
		})
		require.NoError(t, err)
		assert.Equal(t, "Staff Engineer", updated.Title)
		jobRepo.AssertExpectations(t)
	})

	t.Run("empty request reaches the repository with no fields", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		svc := NewJobService(jobRepo)

		jobRepo.On("Update", mock.Anything, 7, sqlbuilder.Fields{}).
			Return(nil, sqlbuilder.ErrNoFields)

		_, err := svc.Update(context.Background(), 7, &models.UpdateJobRequest{})
		assert.ErrorIs(t, err, sqlbuilder.ErrNoFields)
	})
}

func TestJobService_Search(t *testing.T) {
	jobRepo := new(MockJobRepository)
	svc := NewJobService(jobRepo)

	filter := &models.JobFilter{Title: strPtr("engineer")}
	jobRepo.On("FindAll", mock.Anything, filter).Return([]models.Job{{ID: 1, Title: "Engineer"}}, nil)

	got, err := svc.Search(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestJobService_Delete(t *testing.T) {
	jobRepo := new(MockJobRepository)
	svc := NewJobService(jobRepo)

	jobRepo.On("Delete", mock.Anything, 7).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 7))
	jobRepo.AssertExpectations(t)
}
