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

	"github.com/hirewire/hirewire/internal/database/postgres"
	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	userErrors "github.com/hirewire/hirewire/users/errors"
	"github.com/hirewire/hirewire/users/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// userColumnNames translates request field names to physical columns for
// partial updates.
var userColumnNames = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

// postgresUserRepository implements UserRepository using raw SQL queries
type postgresUserRepository struct {
	client *postgres.Client
}

// NewPostgresUserRepository creates a new PostgreSQL repository for users
func NewPostgresUserRepository(client *postgres.Client) UserRepository {
	return &postgresUserRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresUserRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

// Create inserts a new user
func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password, first_name, last_name, email, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.getExecutor(ctx).ExecContext(ctx, query,
		user.Username, user.Password, user.FirstName, user.LastName, user.Email, user.IsAdmin)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return fmt.Errorf("username %q: %w", user.Username, userErrors.ErrDuplicateUser)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// FindAll returns all users ordered by username
func (r *postgresUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT username, password, first_name, last_name, email, is_admin
		FROM users
		ORDER BY username
	`

	users := []models.User{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// FindByUsername returns a single user including the password hash
func (r *postgresUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT username, password, first_name, last_name, email, is_admin
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("username %q: %w", username, userErrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// FindApplications returns the job ids a user applied to
func (r *postgresUserRepository) FindApplications(ctx context.Context, username string) ([]int, error) {
	query := `
		SELECT job_id
		FROM applications
		WHERE username = $1
		ORDER BY job_id
	`

	jobIDs := []int{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &jobIDs, query, username); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return jobIDs, nil
}

// Update applies a partial update compiled from the given fields and returns
// the updated row. The row key binds to the placeholder after the SET values.
func (r *postgresUserRepository) Update(ctx context.Context, username string, fields sqlbuilder.Fields) (*models.User, error) {
	setClause, values, err := sqlbuilder.CompileUpdate(fields, userColumnNames)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE username = $%d
		RETURNING username, password, first_name, last_name, email, is_admin
	`, setClause, len(values)+1)

	var user models.User
	err = sqlx.GetContext(ctx, r.getExecutor(ctx), &user, query, append(values, username)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("username %q: %w", username, userErrors.ErrUserNotFound)
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, fmt.Errorf("username %q: %w", username, userErrors.ErrDuplicateUser)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &user, nil
}

// Delete removes a user
func (r *postgresUserRepository) Delete(ctx context.Context, username string) error {
	result, err := r.getExecutor(ctx).ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("username %q: %w", username, userErrors.ErrUserNotFound)
	}

	return nil
}

// Apply records a job application
func (r *postgresUserRepository) Apply(ctx context.Context, username string, jobID int) error {
	query := `INSERT INTO applications (username, job_id) VALUES ($1, $2)`

	_, err := r.getExecutor(ctx).ExecContext(ctx, query, username, jobID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch string(pqErr.Code) {
			case uniqueViolation:
				return fmt.Errorf("username %q, job %d: %w", username, jobID, userErrors.ErrDuplicateApplication)
			case foreignKeyViolation:
				return fmt.Errorf("job %d: %w", jobID, userErrors.ErrJobNotFound)
			}
		}
		return fmt.Errorf("failed to record application: %w", err)
	}

	return nil
}
