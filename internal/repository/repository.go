package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/assignflow/assignment-api/internal/models"
)

// ErrNotFound is returned when a lookup matches no document. Any other
// error from a repository is an underlying storage fault.
var ErrNotFound = errors.New("repository: document not found")

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Insert stores a new user and fills in its assigned ID
	Insert(ctx context.Context, user *models.User) error

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByUsernameAndRole finds a user by username restricted to a role
	FindByUsernameAndRole(ctx context.Context, username, role string) (*models.User, error)

	// FindByRole lists all users with the given role
	FindByRole(ctx context.Context, role string) ([]models.User, error)
}

// AssignmentRepository defines the interface for assignment data access
type AssignmentRepository interface {
	// Insert stores a new assignment and fills in its assigned ID
	Insert(ctx context.Context, assignment *models.Assignment) error

	// FindByAdminName lists assignments addressed to the given admin username
	FindByAdminName(ctx context.Context, admin string) ([]models.Assignment, error)

	// FindByAdminID lists assignments addressed to the given admin's store id
	FindByAdminID(ctx context.Context, adminID primitive.ObjectID) ([]models.Assignment, error)

	// UpdateStatus overwrites the status field of one assignment.
	// Returns ErrNotFound when no assignment matches the id.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}
