package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/assignflow/assignment-api/internal/constants"
	"github.com/assignflow/assignment-api/internal/models"
	"github.com/assignflow/assignment-api/internal/repository"
)

// AdminService handles the admin-role flows: registration, login,
// assignment listing and status transitions.
type AdminService struct {
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
	jwtSecret      []byte
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repository.UserRepository, assignmentRepo repository.AssignmentRepository, jwtSecret []byte) *AdminService {
	return &AdminService{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		jwtSecret:      jwtSecret,
	}
}

// Register creates an admin-role account and returns its store id.
func (s *AdminService) Register(ctx context.Context, username, password string) (string, error) {
	return registerWithRole(ctx, s.userRepo, username, password, constants.RoleAdmin)
}

// Login verifies credentials against admin-role accounts only. A
// user-role account with the same username does not authenticate here.
func (s *AdminService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	admin, err := s.userRepo.FindByUsernameAndRole(ctx, username, constants.RoleAdmin)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return issueToken(admin, password, s.jwtSecret)
}

// ListAssignments returns the caller's queue, or any admin's queue when
// adminFilter names one. The filter is not scoped to the caller, so any
// admin can read any other admin's assignments by name.
func (s *AdminService) ListAssignments(ctx context.Context, caller *models.User, adminFilter string) ([]models.Assignment, error) {
	if caller.Role != constants.RoleAdmin {
		return nil, ErrNotAdmin
	}

	var (
		assignments []models.Assignment
		err         error
	)
	if adminFilter != "" {
		assignments, err = s.assignmentRepo.FindByAdminName(ctx, adminFilter)
	} else {
		assignments, err = s.assignmentRepo.FindByAdminID(ctx, caller.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// SetAssignmentStatus overwrites an assignment's status. The write is
// unconditional: there is no guard on the previous status and no
// validation of the new value; the HTTP layer only ever submits
// "accepted" or "rejected".
func (s *AdminService) SetAssignmentStatus(ctx context.Context, caller *models.User, assignmentID, status string) error {
	if caller.Role != constants.RoleAdmin {
		return ErrNotAdmin
	}

	id, err := primitive.ObjectIDFromHex(assignmentID)
	if err != nil {
		return ErrInvalidAssignmentID
	}

	if err := s.assignmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to update assignment status: %w", err)
	}
	return nil
}
