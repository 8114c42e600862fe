package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/assignflow/assignment-api/internal/auth"
	"github.com/assignflow/assignment-api/internal/constants"
	"github.com/assignflow/assignment-api/internal/models"
	"github.com/assignflow/assignment-api/internal/repository"
)

var testSecret = []byte("test-secret")

type serviceTestEnv struct {
	userRepo       *repository.MemoryUserRepository
	assignmentRepo *repository.MemoryAssignmentRepository
	userService    *UserService
	adminService   *AdminService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	userRepo := repository.NewMemoryUserRepository()
	assignmentRepo := repository.NewMemoryAssignmentRepository()

	return serviceTestEnv{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		userService:    NewUserService(userRepo, assignmentRepo, testSecret),
		adminService:   NewAdminService(userRepo, assignmentRepo, testSecret),
	}
}

func (env serviceTestEnv) mustFindUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := env.userRepo.FindByUsername(context.Background(), username)
	require.NoError(t, err)
	return user
}

func TestUserRegisterDuplicate(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	id, err := env.userService.Register(ctx, "newuser", "supersecret")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = env.userService.Register(ctx, "newuser", "othersecret")
	require.ErrorIs(t, err, ErrUsernameTaken)
	require.Equal(t, 1, env.userRepo.Count("newuser"))
}

func TestUserRegisterHashesPassword(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	_, err := env.userService.Register(ctx, "newuser", "supersecret")
	require.NoError(t, err)

	user := env.mustFindUser(t, "newuser")
	require.Equal(t, constants.RoleUser, user.Role)
	require.NotEqual(t, "supersecret", user.Password)
	require.True(t, auth.CheckPassword("supersecret", user.Password))
}

func TestUserLogin(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	_, err := env.userService.Register(ctx, "existing", "supersecret")
	require.NoError(t, err)

	result, err := env.userService.Login(ctx, "existing", "supersecret")
	require.NoError(t, err)
	require.Equal(t, "existing", result.Username)

	claims, ok := auth.DecodeAccessToken(result.AccessToken, testSecret)
	require.True(t, ok)
	require.Equal(t, "existing", claims.Subject)

	_, err = env.userService.Login(ctx, "existing", "wrongpassword")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.userService.Login(ctx, "nobody", "supersecret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUploadAssignmentUnknownAdmin(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	_, err := env.userService.Register(ctx, "uploader", "supersecret")
	require.NoError(t, err)
	caller := env.mustFindUser(t, "uploader")

	_, err = env.userService.UploadAssignment(ctx, caller, UploadInput{
		UserID: "student-42",
		Task:   "essay",
		Admin:  "ghost",
	})
	require.ErrorIs(t, err, ErrAdminNotFound)
	require.Equal(t, 0, env.assignmentRepo.Len())
}

func TestUploadAssignmentRejectsNonAdminTarget(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	_, err := env.userService.Register(ctx, "plainuser", "supersecret")
	require.NoError(t, err)
	_, err = env.userService.Register(ctx, "uploader", "supersecret")
	require.NoError(t, err)
	caller := env.mustFindUser(t, "uploader")

	// The target exists but has role "user".
	_, err = env.userService.UploadAssignment(ctx, caller, UploadInput{
		UserID: "student-42",
		Task:   "essay",
		Admin:  "plainuser",
	})
	require.ErrorIs(t, err, ErrAdminNotFound)
}

func TestUploadAssignmentCreatesPending(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	_, err := env.adminService.Register(ctx, "alice", "supersecret")
	require.NoError(t, err)
	_, err = env.userService.Register(ctx, "uploader", "supersecret")
	require.NoError(t, err)
	caller := env.mustFindUser(t, "uploader")

	id, err := env.userService.UploadAssignment(ctx, caller, UploadInput{
		UserID: "student-42",
		Task:   "essay",
		Admin:  "alice",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	alice := env.mustFindUser(t, "alice")
	assignments, err := env.adminService.ListAssignments(ctx, alice, "")
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	require.Equal(t, constants.StatusPending, assignments[0].Status)
	require.Equal(t, "student-42", assignments[0].UserID)
	require.Equal(t, caller.ID, assignments[0].OwnerID)
}

func TestListAdmins(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	// With no admins the listing is an error, not an empty list.
	_, err := env.userService.ListAdmins(ctx)
	require.ErrorIs(t, err, ErrNoAdmins)

	_, err = env.adminService.Register(ctx, "alice", "supersecret")
	require.NoError(t, err)
	_, err = env.userService.Register(ctx, "plainuser", "supersecret")
	require.NoError(t, err)

	admins, err := env.userService.ListAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Equal(t, "alice", admins[0].Username)
	require.NotEmpty(t, admins[0].ID)
}
