// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/hirewire/hirewire/companies/models"
	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
)

// CompanyRepository defines the persistence operations for companies
type CompanyRepository interface {
	// Create inserts a new company
	Create(ctx context.Context, company *models.Company) error

	// FindAll returns companies matching the filter, ordered by handle.
	// A nil or empty filter returns all companies.
	FindAll(ctx context.Context, filter *models.CompanyFilter) ([]models.Company, error)

	// FindByHandle returns a single company
	FindByHandle(ctx context.Context, handle string) (*models.Company, error)

	// Update applies a partial update and returns the updated row
	Update(ctx context.Context, handle string, fields sqlbuilder.Fields) (*models.Company, error)

	// Delete removes a company
	Delete(ctx context.Context, handle string) error
}
