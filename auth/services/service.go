// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hirewire/hirewire/auth/models"
	platformconfig "github.com/hirewire/hirewire/internal/platform/config"
	usermodels "github.com/hirewire/hirewire/users/models"
	userservices "github.com/hirewire/hirewire/users/services"
)

// AuthService issues JWTs for valid credentials
type AuthService interface {
	// Token verifies a username/password pair and returns a signed JWT
	Token(ctx context.Context, username, password string) (string, error)

	// Register creates a non-admin user from a self sign-up request and
	// returns the new user together with their first token
	Register(ctx context.Context, req *models.RegisterRequest) (*usermodels.User, string, error)

	// TokenFor signs a JWT for an already-authenticated user
	TokenFor(user *usermodels.User) (string, error)
}

// authService implements the AuthService interface
type authService struct {
	userService userservices.UserService
	jwtConfig   *platformconfig.JWTConfig
}

// NewAuthService creates a new instance of the auth service
func NewAuthService(userService userservices.UserService, jwtConfig *platformconfig.JWTConfig) AuthService {
	return &authService{
		userService: userService,
		jwtConfig:   jwtConfig,
	}
}

// Token verifies credentials and signs a JWT on success
func (s *authService) Token(ctx context.Context, username, password string) (string, error) {
	user, err := s.userService.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	return s.signToken(user)
}

// Register creates a non-admin user and signs their first token. The admin
// flag is hard-coded off here regardless of what the request carried.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*usermodels.User, string, error) {
	user, err := s.userService.Create(ctx, &usermodels.CreateUserRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   false,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// TokenFor signs a JWT for a user whose identity was established elsewhere,
// such as an admin-created account.
func (s *authService) TokenFor(user *usermodels.User) (string, error) {
	return s.signToken(user)
}

// signToken builds an HS256 token whose claim payload matches what the JWT
// middleware expects to find under the configured claim key.
func (s *authService) signToken(user *usermodels.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(s.jwtConfig.ExpiresIn).Unix(),
		s.jwtConfig.ClaimKey: map[string]interface{}{
			"username": user.Username,
			"isAdmin":  user.IsAdmin,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
