package validation

import (
	"fmt"
	"strings"

	"github.com/hirewire/hirewire/companies/models"
)

// ValidateCreateCompanyRequest validates the create company request
func ValidateCreateCompanyRequest(req *models.CreateCompanyRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Handle == "" {
		return fmt.Errorf("handle is required")
	}

	if len(req.Handle) > 25 {
		return fmt.Errorf("handle must be at most 25 characters")
	}

	if strings.ContainsAny(req.Handle, " \t\n") || req.Handle != strings.ToLower(req.Handle) {
		return fmt.Errorf("handle must be lowercase with no whitespace")
	}

	if req.Name == "" {
		return fmt.Errorf("name is required")
	}

	if req.NumEmployees < 0 {
		return fmt.Errorf("numEmployees cannot be negative")
	}

	return nil
}

// ValidateUpdateCompanyRequest validates the update company request
func ValidateUpdateCompanyRequest(req *models.UpdateCompanyRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Name != nil && *req.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if req.NumEmployees != nil && *req.NumEmployees < 0 {
		return fmt.Errorf("numEmployees cannot be negative")
	}

	return nil
}
