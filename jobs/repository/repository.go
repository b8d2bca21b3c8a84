// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	"github.com/hirewire/hirewire/jobs/models"
)

// JobRepository defines the persistence operations for job postings
type JobRepository interface {
	// Create inserts a new job and fills in its generated id
	Create(ctx context.Context, job *models.Job) error

	// FindAll returns jobs matching the filter, ordered by id.
	// A nil or empty filter returns all jobs.
	FindAll(ctx context.Context, filter *models.JobFilter) ([]models.Job, error)

	// FindByID returns a single job
	FindByID(ctx context.Context, id int) (*models.Job, error)

	// FindByCompany returns all jobs posted by a company, ordered by id
	FindByCompany(ctx context.Context, handle string) ([]models.Job, error)

	// Update applies a partial update and returns the updated row
	Update(ctx context.Context, id int, fields sqlbuilder.Fields) (*models.Job, error)

	// Delete removes a job
	Delete(ctx context.Context, id int) error
}
