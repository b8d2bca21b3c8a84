// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"

	"github.com/hirewire/hirewire/companies/models"
	"github.com/hirewire/hirewire/companies/repository"
	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	jobRepository "github.com/hirewire/hirewire/jobs/repository"
)

// CompanyService defines the interface for company operations
type CompanyService interface {
	// Create registers a new company
	Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)

	// Search returns companies matching the filter (all companies when empty)
	Search(ctx context.Context, filter *models.CompanyFilter) ([]models.Company, error)

	// Get returns a company with its job postings
	Get(ctx context.Context, handle string) (*models.CompanyWithJobs, error)

	// Update applies a partial update
	Update(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error)

	// Delete removes a company
	Delete(ctx context.Context, handle string) error
}

// companyService implements the CompanyService interface
type companyService struct {
	companyRepo repository.CompanyRepository
	jobRepo     jobRepository.JobRepository
}

// NewCompanyService creates a new instance of the company service
func NewCompanyService(companyRepo repository.CompanyRepository, jobRepo jobRepository.JobRepository) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
	}
}

// Create registers a new company
func (s *companyService) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// Search returns companies matching the filter
func (s *companyService) Search(ctx context.Context, filter *models.CompanyFilter) ([]models.Company, error) {
	return s.companyRepo.FindAll(ctx, filter)
}

// Get returns a company with its job postings
func (s *companyService) Get(ctx context.Context, handle string) (*models.CompanyWithJobs, error) {
	company, err := s.companyRepo.FindByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.FindByCompany(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to load company jobs: %w", err)
	}

	return &models.CompanyWithJobs{Company: *company, Jobs: jobs}, nil
}

// Update applies a partial update. Fields are collected in a fixed order so
// the generated statement is stable for equivalent requests; unset fields
// never reach the update compiler.
func (s *companyService) Update(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error) {
	fields := sqlbuilder.Fields{}
	if req.Name != nil {
		fields = fields.Add("name", *req.Name)
	}
	if req.Description != nil {
		fields = fields.Add("description", *req.Description)
	}
	if req.NumEmployees != nil {
		fields = fields.Add("numEmployees", *req.NumEmployees)
	}
	if req.LogoURL != nil {
		fields = fields.Add("logoUrl", *req.LogoURL)
	}

	return s.companyRepo.Update(ctx, handle, fields)
}

// Delete removes a company
func (s *companyService) Delete(ctx context.Context, handle string) error {
	return s.companyRepo.Delete(ctx, handle)
}
