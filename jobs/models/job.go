// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

// Job represents a job posting row
type Job struct {
	ID            int     `json:"id" db:"id"`
	Title         string  `json:"title" db:"title"`
	Salary        int     `json:"salary" db:"salary"`
	Equity        float64 `json:"equity" db:"equity"`
	CompanyHandle string  `json:"companyHandle" db:"company_handle"`
}

// JobFilter carries the recognized search dimensions for listing jobs.
// HasEquity is tri-state: nil means the dimension is absent and must not
// reach the predicate rule at all.
type JobFilter struct {
	Title     *string `schema:"title"`
	MinSalary *int    `schema:"minSalary"`
	HasEquity *bool   `schema:"hasEquity"`
}

// CreateJobRequest is the body of POST /jobs
type CreateJobRequest struct {
	Title         string  `json:"title"`
	Salary        int     `json:"salary"`
	Equity        float64 `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

// UpdateJobRequest is the body of PATCH /jobs/:id. The id and company handle
// are immutable and have no counterpart here.
type UpdateJobRequest struct {
	Title  *string  `json:"title"`
	Salary *int     `json:"salary"`
	Equity *float64 `json:"equity"`
}
