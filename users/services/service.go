// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	userErrors "github.com/hirewire/hirewire/users/errors"
	"github.com/hirewire/hirewire/users/models"
	"github.com/hirewire/hirewire/users/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserService defines the interface for user operations
type UserService interface {
	// Create registers a new user; the plaintext password is hashed here
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)

	// Authenticate verifies credentials and returns the user on success
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// List returns all users
	List(ctx context.Context) ([]models.User, error)

	// Get returns a user with their job applications
	Get(ctx context.Context, username string) (*models.UserWithApplications, error)

	// Update applies a partial update; a new password is hashed before it
	// reaches the store
	Update(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)

	// Delete removes a user
	Delete(ctx context.Context, username string) error

	// Apply records a job application
	Apply(ctx context.Context, username string, jobID int) error
}

// userService implements the UserService interface
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of the user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Create registers a new user
func (s *userService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies credentials. Unknown usernames and wrong passwords
// both surface as ErrInvalidCredentials so the response does not leak which
// part was wrong.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userErrors.ErrUserNotFound) {
			return nil, userErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, userErrors.ErrInvalidCredentials
	}

	return user, nil
}

// List returns all users
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

// Get returns a user with their job applications
func (s *userService) Get(ctx context.Context, username string) (*models.UserWithApplications, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	jobs, err := s.userRepo.FindApplications(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}

	return &models.UserWithApplications{User: *user, Jobs: jobs}, nil
}

// Update applies a partial update. Fields are collected in a fixed order so
// the generated statement is stable for equivalent requests; the username and
// admin flag are not part of the request type, so they cannot change here.
func (s *userService) Update(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	fields := sqlbuilder.Fields{}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		fields = fields.Add("password", string(hashedPassword))
	}
	if req.FirstName != nil {
		fields = fields.Add("firstName", *req.FirstName)
	}
	if req.LastName != nil {
		fields = fields.Add("lastName", *req.LastName)
	}
	if req.Email != nil {
		fields = fields.Add("email", *req.Email)
	}

	return s.userRepo.Update(ctx, username, fields)
}

// Delete removes a user
func (s *userService) Delete(ctx context.Context, username string) error {
	return s.userRepo.Delete(ctx, username)
}

// Apply records a job application
func (s *userService) Apply(ctx context.Context, username string, jobID int) error {
	return s.userRepo.Apply(ctx, username, jobID)
}
