package validation

import (
	"fmt"

	"github.com/hirewire/hirewire/jobs/models"
)

// ValidateCreateJobRequest validates the create job request
func ValidateCreateJobRequest(req *models.CreateJobRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Title == "" {
		return fmt.Errorf("title is required")
	}

	if req.CompanyHandle == "" {
		return fmt.Errorf("companyHandle is required")
	}

	if req.Salary < 0 {
		return fmt.Errorf("salary cannot be negative")
	}

	if req.Equity < 0 || req.Equity > 1.0 {
		return fmt.Errorf("equity must be between 0 and 1.0")
	}

	return nil
}

// ValidateUpdateJobRequest validates the update job request
func ValidateUpdateJobRequest(req *models.UpdateJobRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Title != nil && *req.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if req.Salary != nil && *req.Salary < 0 {
		return fmt.Errorf("salary cannot be negative")
	}

	if req.Equity != nil && (*req.Equity < 0 || *req.Equity > 1.0) {
		return fmt.Errorf("equity must be between 0 and 1.0")
	}

	return nil
}
