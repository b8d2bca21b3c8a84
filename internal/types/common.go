package types

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
)

// Common Values
const (
	UserRole  = "user"
	AdminRole = "admin"
)

// UserCtxName is the Locals key where the authenticated user is stored.
const UserCtxName = "user"

// UserContext carries the authenticated caller's identity through a request.
type UserContext struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}
