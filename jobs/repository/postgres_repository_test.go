// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"testing"

	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	"github.com/hirewire/hirewire/internal/testutil"
	jobErrors "github.com/hirewire/hirewire/jobs/errors"
	"github.com/hirewire/hirewire/jobs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedJobsSchema(t *testing.T, db *testutil.IsolatedDB) {
	t.Helper()
	db.Migrate(t, testutil.SchemaDDL)
	db.Migrate(t, `
		INSERT INTO companies (handle, name) VALUES
			('acme', 'Acme Corp'),
			('initech', 'Initech');
	`)
}

func TestPostgresJobRepository_Integration(t *testing.T) {
	db := testutil.Setup(t)
	seedJobsSchema(t, db)

	repo := NewPostgresJobRepository(db.Client)
	ctx := context.Background()

	t.Run("create fills generated id", func(t *testing.T) {
		job := &models.Job{
			Title:         "Backend Engineer",
			Salary:        120000,
			Equity:        0.05,
			CompanyHandle: "acme",
		}
		require.NoError(t, repo.Create(ctx, job))
		assert.Greater(t, job.ID, 0)

		got, err := repo.FindByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", got.Title)
		assert.Equal(t, 0.05, got.Equity)
	})

	t.Run("create with unknown company", func(t *testing.T) {
		err := repo.Create(ctx, &models.Job{Title: "Ghost Job", CompanyHandle: "nope"})
		assert.ErrorIs(t, err, jobErrors.ErrCompanyNotFound)
	})

	t.Run("filtered listing", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &models.Job{
			Title: "Frontend Engineer", Salary: 95000, Equity: 0, CompanyHandle: "acme",
		}))
		require.NoError(t, repo.Create(ctx, &models.Job{
			Title: "Engineering Manager", Salary: 180000, Equity: 0.10, CompanyHandle: "initech",
		}))

		all, err := repo.FindAll(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		byTitle, err := repo.FindAll(ctx, &models.JobFilter{Title: strPtr("engineer")})
		require.NoError(t, err)
		// ILIKE matches "Engineer" and "Engineering".
		assert.Len(t, byTitle, 3)

		bySalary, err := repo.FindAll(ctx, &models.JobFilter{MinSalary: intPtr(150000)})
		require.NoError(t, err)
		require.Len(t, bySalary, 1)
		assert.Equal(t, "Engineering Manager", bySalary[0].Title)

		withEquity, err := repo.FindAll(ctx, &models.JobFilter{HasEquity: boolPtr(true)})
		require.NoError(t, err)
		assert.Len(t, withEquity, 2)

		withoutEquity, err := repo.FindAll(ctx, &models.JobFilter{HasEquity: boolPtr(false)})
		require.NoError(t, err)
		require.Len(t, withoutEquity, 1)
		assert.Equal(t, "Frontend Engineer", withoutEquity[0].Title)
	})

	t.Run("find by company", func(t *testing.T) {
		acmeJobs, err := repo.FindByCompany(ctx, "acme")
		require.NoError(t, err)
		assert.Len(t, acmeJobs, 2)

		none, err := repo.FindByCompany(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("partial update", func(t *testing.T) {
		job := &models.Job{Title: "Temp", Salary: 50000, CompanyHandle: "acme"}
		require.NoError(t, repo.Create(ctx, job))

		updated, err := repo.Update(ctx, job.ID, sqlbuilder.Fields{}.
			Add("title", "Contractor").
			Add("salary", 60000.0))
		require.NoError(t, err)
		assert.Equal(t, "Contractor", updated.Title)
		assert.Equal(t, 60000.0, updated.Salary)
		assert.Equal(t, "acme", updated.CompanyHandle)
	})

	t.Run("update with no fields", func(t *testing.T) {
		_, err := repo.Update(ctx, 1, sqlbuilder.Fields{})
		assert.ErrorIs(t, err, sqlbuilder.ErrNoFields)
	})

	t.Run("delete", func(t *testing.T) {
		job := &models.Job{Title: "Doomed", CompanyHandle: "acme"}
		require.NoError(t, repo.Create(ctx, job))

		require.NoError(t, repo.Delete(ctx, job.ID))
		_, err := repo.FindByID(ctx, job.ID)
		assert.ErrorIs(t, err, jobErrors.ErrJobNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, job.ID), jobErrors.ErrJobNotFound)
	})
}
