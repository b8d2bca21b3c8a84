// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	"github.com/hirewire/hirewire/users/models"
)

// UserRepository defines the persistence operations for users and their
// job applications
type UserRepository interface {
	// Create inserts a new user (password already hashed)
	Create(ctx context.Context, user *models.User) error

	// FindAll returns all users ordered by username
	FindAll(ctx context.Context) ([]models.User, error)

	// FindByUsername returns a single user including the password hash
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindApplications returns the job ids a user applied to, ordered
	FindApplications(ctx context.Context, username string) ([]int, error)

	// Update applies a partial update and returns the updated row
	Update(ctx context.Context, username string, fields sqlbuilder.Fields) (*models.User, error)

	// Delete removes a user
	Delete(ctx context.Context, username string) error

	// Apply records a job application
	Apply(ctx context.Context, username string, jobID int) error
}
