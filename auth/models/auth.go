// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import usermodels "github.com/hirewire/hirewire/users/models"

// TokenRequest is the body of POST /auth/token
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register. Self sign-up never
// grants the admin flag; that only happens through the admin-only user
// creation route.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// TokenResponse carries a signed JWT back to the client
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterResponse carries the created user along with their first token
type RegisterResponse struct {
	Token string           `json:"token"`
	User  *usermodels.User `json:"user"`
}
