// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	"github.com/hirewire/hirewire/jobs/models"
	"github.com/hirewire/hirewire/jobs/repository"
)

// JobService defines the interface for job operations
type JobService interface {
	// Create posts a new job
	Create(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)

	// Search returns jobs matching the filter (all jobs when empty)
	Search(ctx context.Context, filter *models.JobFilter) ([]models.Job, error)

	// Get returns a single job
	Get(ctx context.Context, id int) (*models.Job, error)

	// Update applies a partial update
	Update(ctx context.Context, id int, req *models.UpdateJobRequest) (*models.Job, error)

	// Delete removes a job
	Delete(ctx context.Context, id int) error
}

// jobService implements the JobService interface
type jobService struct {
	jobRepo repository.JobRepository
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

// Create posts a new job
func (s *jobService) Create(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// Search returns jobs matching the filter
func (s *jobService) Search(ctx context.Context, filter *models.JobFilter) ([]models.Job, error) {
	return s.jobRepo.FindAll(ctx, filter)
}

// Get returns a single job
func (s *jobService) Get(ctx context.Context, id int) (*models.Job, error) {
	return s.jobRepo.FindByID(ctx, id)
}

// Update applies a partial update. Fields are collected in a fixed order so
// the generated statement is stable for equivalent requests; the id and
// company handle are not part of the request type, so they cannot change.
func (s *jobService) Update(ctx context.Context, id int, req *models.UpdateJobRequest) (*models.Job, error) {
	fields := sqlbuilder.Fields{}
	if req.Title != nil {
		fields = fields.Add("title", *req.Title)
	}
	if req.Salary != nil {
		fields = fields.Add("salary", *req.Salary)
	}
	if req.Equity != nil {
		fields = fields.Add("equity", *req.Equity)
	}

	return s.jobRepo.Update(ctx, id, fields)
}

// Delete removes a job
func (s *jobService) Delete(ctx context.Context, id int) error {
	return s.jobRepo.Delete(ctx, id)
}
