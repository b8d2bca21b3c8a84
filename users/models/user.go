// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

// User represents a user row. The bcrypt password hash never serializes.
type User struct {
	Username  string `json:"username" db:"username"`
	Password  string `json:"-" db:"password"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
	IsAdmin   bool   `json:"isAdmin" db:"is_admin"`
}

// UserWithApplications is the detail view of a user including the ids of
// jobs they applied to.
type UserWithApplications struct {
	User
	Jobs []int `json:"jobs"`
}

// CreateUserRequest is the body of POST /users (admin-created accounts)
type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UpdateUserRequest is the body of PATCH /users/:username. Only set fields
// are written; username and the admin flag are immutable through this route.
type UpdateUserRequest struct {
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}
