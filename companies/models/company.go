// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import jobmodels "github.com/hirewire/hirewire/jobs/models"

// Company represents a company row
type Company struct {
	Handle       string `json:"handle" db:"handle"`
	Name         string `json:"name" db:"name"`
	Description  string `json:"description" db:"description"`
	NumEmployees int    `json:"numEmployees" db:"num_employees"`
	LogoURL      string `json:"logoUrl" db:"logo_url"`
}

// CompanyWithJobs is the detail view of a company including its job postings
type CompanyWithJobs struct {
	Company
	Jobs []jobmodels.Job `json:"jobs"`
}

// CompanyFilter carries the recognized search dimensions for listing
// companies. Unset pointers mean the dimension is absent. Schema tags drive
// query-string decoding.
type CompanyFilter struct {
	Name         *string `schema:"name"`
	MinEmployees *int    `schema:"minEmployees"`
	MaxEmployees *int    `schema:"maxEmployees"`
}

// CreateCompanyRequest is the body of POST /companies
type CreateCompanyRequest struct {
	Handle       string `json:"handle"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	NumEmployees int    `json:"numEmployees"`
	LogoURL      string `json:"logoUrl"`
}

// UpdateCompanyRequest is the body of PATCH /companies/:handle. Only set
// fields are written; the handle itself is immutable.
type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}
