package validation

import (
	"fmt"
	"strings"

	"github.com/hirewire/hirewire/users/models"
	gopass "github.com/nbutton23/zxcvbn-go"
)

// Password strength floor, matching the sign-up policy.
const (
	minPasswordScore   = 3
	minPasswordEntropy = 37
)

// ValidatePasswordStrength rejects weak passwords before they are hashed
func ValidatePasswordStrength(password string) error {
	strength := gopass.PasswordStrength(password, nil)
	if strength.Score < minPasswordScore || strength.Entropy < minPasswordEntropy {
		return fmt.Errorf("password is not strong enough")
	}
	return nil
}

// ValidateCreateUserRequest validates the create user request
func ValidateCreateUserRequest(req *models.CreateUserRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Username == "" {
		return fmt.Errorf("username is required")
	}

	if len(req.Username) > 30 {
		return fmt.Errorf("username must be at most 30 characters")
	}

	if strings.ContainsAny(req.Username, " \t\n") {
		return fmt.Errorf("username cannot contain whitespace")
	}

	if req.Password == "" {
		return fmt.Errorf("password is required")
	}

	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}

	return ValidatePasswordStrength(req.Password)
}

// ValidateUpdateUserRequest validates the update user request
func ValidateUpdateUserRequest(req *models.UpdateUserRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Email != nil && (*req.Email == "" || !strings.Contains(*req.Email, "@")) {
		return fmt.Errorf("email must be valid")
	}

	if req.Password != nil {
		if err := ValidatePasswordStrength(*req.Password); err != nil {
			return err
		}
	}

	return nil
}
