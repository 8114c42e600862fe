package constants

import "time"

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Assignment statuses
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ContextKeyUser is the gin context key under which the authenticated
// user document is stored by the auth middleware.
const ContextKeyUser = "current_user"

// AccessTokenLifetime is the lifetime issued on login. Login always uses
// this value, not the configured default.
const AccessTokenLifetime = 30 * time.Minute

// Collection names
const (
	UsersCollection       = "users"
	AssignmentsCollection = "assignments"
)
