package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/assignflow/assignment-api/internal/auth"
	"github.com/assignflow/assignment-api/internal/constants"
	"github.com/assignflow/assignment-api/internal/models"
	"github.com/assignflow/assignment-api/internal/repository"
)

var (
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrNoAdmins             = errors.New("no admins found")
	ErrNotAdmin             = errors.New("not authorized as admin")
	ErrInvalidAssignmentID  = errors.New("invalid assignment id")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToIssueToken   = errors.New("failed to issue access token")
)

// UserService handles the user-role flows: registration, login,
// assignment upload and admin listing.
type UserService struct {
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
	jwtSecret      []byte
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, assignmentRepo repository.AssignmentRepository, jwtSecret []byte) *UserService {
	return &UserService{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		jwtSecret:      jwtSecret,
	}
}

// LoginResult holds the outcome of a successful login.
type LoginResult struct {
	ID          string
	Username    string
	AccessToken string
}

// AdminSummary is the {id, username} projection returned by ListAdmins.
type AdminSummary struct {
	ID       string
	Username string
}

// UploadInput is the caller-supplied part of a new assignment.
type UploadInput struct {
	UserID string
	Task   string
	Admin  string
}

// Register creates a user-role account and returns its store id.
func (s *UserService) Register(ctx context.Context, username, password string) (string, error) {
	return registerWithRole(ctx, s.userRepo, username, password, constants.RoleUser)
}

// Login verifies credentials and issues an access token. Lookup is by
// username alone, so an admin-role account can also log in here.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return issueToken(user, password, s.jwtSecret)
}

// UploadAssignment creates a pending assignment addressed to an existing
// admin, owned by the caller.
func (s *UserService) UploadAssignment(ctx context.Context, caller *models.User, input UploadInput) (string, error) {
	admin, err := s.userRepo.FindByUsername(ctx, input.Admin)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to find admin: %w", err)
	}
	if admin == nil || admin.Role != constants.RoleAdmin {
		return "", ErrAdminNotFound
	}

	assignment := &models.Assignment{
		OwnerID:   caller.ID,
		UserID:    input.UserID,
		Task:      input.Task,
		AdminID:   admin.ID,
		Admin:     input.Admin,
		Status:    constants.StatusPending,
		Timestamp: time.Now(),
	}
	if err := s.assignmentRepo.Insert(ctx, assignment); err != nil {
		return "", fmt.Errorf("failed to insert assignment: %w", err)
	}
	return assignment.ID.Hex(), nil
}

// ListAdmins returns every admin-role account. An empty set is an error,
// not an empty list.
func (s *UserService) ListAdmins(ctx context.Context) ([]AdminSummary, error) {
	admins, err := s.userRepo.FindByRole(ctx, constants.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	if len(admins) == 0 {
		return nil, ErrNoAdmins
	}

	summaries := make([]AdminSummary, 0, len(admins))
	for _, admin := range admins {
		summaries = append(summaries, AdminSummary{
			ID:       admin.ID.Hex(),
			Username: admin.Username,
		})
	}
	return summaries, nil
}

// registerWithRole creates an account with the given role after checking
// that the username is free. The check and the insert are separate store
// calls, so concurrent registrations of the same username can race.
func registerWithRole(ctx context.Context, userRepo repository.UserRepository, username, password, role string) (string, error) {
	_, err := userRepo.FindByUsername(ctx, username)
	if err == nil {
		return "", ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return "", ErrFailedToHashPassword
	}

	user := &models.User{
		Username: username,
		Password: hashed,
		Role:     role,
	}
	if err := userRepo.Insert(ctx, user); err != nil {
		return "", fmt.Errorf("failed to insert user: %w", err)
	}
	return user.ID.Hex(), nil
}

// issueToken verifies the password and mints the login response. The
// token lifetime is always constants.AccessTokenLifetime, ignoring the
// configured default.
func issueToken(user *models.User, password string, secret []byte) (*LoginResult, error) {
	if !auth.CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.CreateAccessToken(user.Username, constants.AccessTokenLifetime, secret)
	if err != nil {
		return nil, ErrFailedToIssueToken
	}

	return &LoginResult{
		ID:          user.ID.Hex(),
		Username:    user.Username,
		AccessToken: token,
	}, nil
}
