package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assignflow/assignment-api/internal/dto"
	apierrors "github.com/assignflow/assignment-api/internal/errors"
	"github.com/assignflow/assignment-api/internal/middleware"
	"github.com/assignflow/assignment-api/internal/services"
)

// UserHandler coordinates the user-role HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CredentialsRequest is the body of both register and login endpoints.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a user-role account.
func (h *UserHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	id, err := h.userService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		ID:      id,
		Message: "User registered successfully",
	})
}

// Login authenticates a user and returns a bearer token.
func (h *UserHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(result))
}

// UploadAssignment creates a pending assignment for the caller.
func (h *UserHandler) UploadAssignment(c *gin.Context) {
	type UploadRequest struct {
		UserID string `json:"userId" binding:"required"`
		Task   string `json:"task" binding:"required"`
		Admin  string `json:"admin" binding:"required"`
	}

	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	caller, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	id, err := h.userService.UploadAssignment(c.Request.Context(), caller, services.UploadInput{
		UserID: req.UserID,
		Task:   req.Task,
		Admin:  req.Admin,
	})
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			apierrors.NotFound(c, fmt.Sprintf("Admin '%s' not found", req.Admin))
			return
		}
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		ID:      id,
		Message: "Assignment uploaded successfully",
	})
}

// ListAdmins returns every admin account as {id, username} pairs.
func (h *UserHandler) ListAdmins(c *gin.Context) {
	admins, err := h.userService.ListAdmins(c.Request.Context())
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminList(admins))
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, "Username already taken")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Invalid username or password")
	case errors.Is(err, services.ErrNoAdmins):
		apierrors.NotFound(c, "No admins found")
	case errors.Is(err, services.ErrFailedToHashPassword),
		errors.Is(err, services.ErrFailedToIssueToken):
		apierrors.InternalError(c, "")
	default:
		apierrors.StorageUnavailable(c)
	}
}
