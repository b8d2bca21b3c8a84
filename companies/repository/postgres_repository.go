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

	companyErrors "github.com/hirewire/hirewire/companies/errors"
	"github.com/hirewire/hirewire/companies/models"
	"github.com/hirewire/hirewire/internal/database/postgres"
	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// postgresCompanyRepository implements CompanyRepository using raw SQL queries
type postgresCompanyRepository struct {
	client *postgres.Client
}

// NewPostgresCompanyRepository creates a new PostgreSQL repository for companies
func NewPostgresCompanyRepository(client *postgres.Client) CompanyRepository {
	return &postgresCompanyRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresCompanyRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

// Create inserts a new company
func (r *postgresCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.getExecutor(ctx).ExecContext(ctx, query,
		company.Handle, company.Name, company.Description, company.NumEmployees, company.LogoURL)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return fmt.Errorf("handle %q: %w", company.Handle, companyErrors.ErrDuplicateCompany)
		}
		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

// FindAll returns companies matching the filter, ordered by handle
func (r *postgresCompanyRepository) FindAll(ctx context.Context, filter *models.CompanyFilter) ([]models.Company, error) {
	whereClause, values, err := compileCompanyFilter(filter)
	if err != nil {
		return nil, err
	}

	query := `SELECT handle, name, description, num_employees, logo_url FROM companies`
	if whereClause != "" {
		query += " WHERE " + whereClause
	}
	query += " ORDER BY handle"

	companies := []models.Company{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &companies, query, values...); err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return companies, nil
}

// FindByHandle returns a single company
func (r *postgresCompanyRepository) FindByHandle(ctx context.Context, handle string) (*models.Company, error) {
	query := `
		SELECT handle, name, description, num_employees, logo_url
		FROM companies
		WHERE handle = $1
	`

	var company models.Company
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &company, query, handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("handle %q: %w", handle, companyErrors.ErrCompanyNotFound)
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return &company, nil
}

// Update applies a partial update compiled from the given fields and returns
// the updated row. The row key binds to the placeholder after the SET values.
func (r *postgresCompanyRepository) Update(ctx context.Context, handle string, fields sqlbuilder.Fields) (*models.Company, error) {
	setClause, values, err := sqlbuilder.CompileUpdate(fields, companyColumnNames)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE companies
		SET %s
		WHERE handle = $%d
		RETURNING handle, name, description, num_employees, logo_url
	`, setClause, len(values)+1)

	var company models.Company
	err = sqlx.GetContext(ctx, r.getExecutor(ctx), &company, query, append(values, handle)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("handle %q: %w", handle, companyErrors.ErrCompanyNotFound)
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, fmt.Errorf("handle %q: %w", handle, companyErrors.ErrDuplicateCompany)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return &company, nil
}

// Delete removes a company
func (r *postgresCompanyRepository) Delete(ctx context.Context, handle string) error {
	result, err := r.getExecutor(ctx).ExecContext(ctx, `DELETE FROM companies WHERE handle = $1`, handle)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("handle %q: %w", handle, companyErrors.ErrCompanyNotFound)
	}

	return nil
}
