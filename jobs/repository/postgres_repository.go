// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hirewire/hirewire/internal/database/postgres"
	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	jobErrors "github.com/hirewire/hirewire/jobs/errors"
	"github.com/hirewire/hirewire/jobs/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

// postgresJobRepository implements JobRepository using raw SQL queries
type postgresJobRepository struct {
	client *postgres.Client
}

// NewPostgresJobRepository creates a new PostgreSQL repository for jobs
func NewPostgresJobRepository(client *postgres.Client) JobRepository {
	return &postgresJobRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresJobRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

// Create inserts a new job and fills in its generated id
func (r *postgresJobRepository) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &job.ID, query,
		job.Title, job.Salary, job.Equity, job.CompanyHandle)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolation {
			return fmt.Errorf("company %q: %w", job.CompanyHandle, jobErrors.ErrCompanyNotFound)
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// FindAll returns jobs matching the filter, ordered by id
func (r *postgresJobRepository) FindAll(ctx context.Context, filter *models.JobFilter) ([]models.Job, error) {
	whereClause, values, err := compileJobFilter(filter)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, title, salary, equity, company_handle FROM jobs`
	if whereClause != "" {
		query += " WHERE " + whereClause
	}
	query += " ORDER BY id"

	jobs := []models.Job{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &jobs, query, values...); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// FindByID returns a single job
func (r *postgresJobRepository) FindByID(ctx context.Context, id int) (*models.Job, error) {
	query := `
		SELECT id, title, salary, equity, company_handle
		FROM jobs
		WHERE id = $1
	`

	var job models.Job
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &job, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("id %d: %w", id, jobErrors.ErrJobNotFound)
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	return &job, nil
}

// FindByCompany returns all jobs posted by a company, ordered by id
func (r *postgresJobRepository) FindByCompany(ctx context.Context, handle string) ([]models.Job, error) {
	query := `
		SELECT id, title, salary, equity, company_handle
		FROM jobs
		WHERE company_handle = $1
		ORDER BY id
	`

	jobs := []models.Job{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &jobs, query, handle); err != nil {
		return nil, fmt.Errorf("failed to list company jobs: %w", err)
	}

	return jobs, nil
}

// Update applies a partial update compiled from the given fields and returns
// the updated row. The row key binds to the placeholder after the SET values.
func (r *postgresJobRepository) Update(ctx context.Context, id int, fields sqlbuilder.Fields) (*models.Job, error) {
	setClause, values, err := sqlbuilder.CompileUpdate(fields, jobColumnNames)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE jobs
		SET %s
		WHERE id = $%d
		RETURNING id, title, salary, equity, company_handle
	`, setClause, len(values)+1)

	var job models.Job
	err = sqlx.GetContext(ctx, r.getExecutor(ctx), &job, query, append(values, id)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("id %d: %w", id, jobErrors.ErrJobNotFound)
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return &job, nil
}

// Delete removes a job
func (r *postgresJobRepository) Delete(ctx context.Context, id int) error {
	result, err := r.getExecutor(ctx).ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("id %d: %w", id, jobErrors.ErrJobNotFound)
	}

	return nil
}
