package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/assignflow/assignment-api/internal/models"
)

// MemoryUserRepository is an in-memory UserRepository used by tests.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

// NewMemoryUserRepository creates an empty in-memory user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[primitive.ObjectID]models.User)}
}

func (r *MemoryUserRepository) Insert(ctx context.Context, user *models.User) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindByUsernameAndRole(ctx context.Context, username, role string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username && u.Role == role {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []models.User
	for _, u := range r.users {
		if u.Role == role {
			result = append(result, u)
		}
	}
	return result, nil
}

// Count returns the number of stored users matching the username.
func (r *MemoryUserRepository) Count(username string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, u := range r.users {
		if u.Username == username {
			n++
		}
	}
	return n
}

// MemoryAssignmentRepository is an in-memory AssignmentRepository used by tests.
type MemoryAssignmentRepository struct {
	mu          sync.RWMutex
	assignments map[primitive.ObjectID]models.Assignment
}

// NewMemoryAssignmentRepository creates an empty in-memory assignment repository.
func NewMemoryAssignmentRepository() *MemoryAssignmentRepository {
	return &MemoryAssignmentRepository{assignments: make(map[primitive.ObjectID]models.Assignment)}
}

func (r *MemoryAssignmentRepository) Insert(ctx context.Context, assignment *models.Assignment) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if assignment.ID.IsZero() {
		assignment.ID = primitive.NewObjectID()
	}
	r.assignments[assignment.ID] = *assignment
	return nil
}

func (r *MemoryAssignmentRepository) FindByAdminName(ctx context.Context, admin string) ([]models.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []models.Assignment
	for _, a := range r.assignments {
		if a.Admin == admin {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *MemoryAssignmentRepository) FindByAdminID(ctx context.Context, adminID primitive.ObjectID) ([]models.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []models.Assignment
	for _, a := range r.assignments {
		if a.AdminID == adminID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *MemoryAssignmentRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assignments[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	r.assignments[id] = a
	return nil
}

// Len returns the number of stored assignments.
func (r *MemoryAssignmentRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.assignments)
}
