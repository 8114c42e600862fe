package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assignflow/assignment-api/internal/constants"
	"github.com/assignflow/assignment-api/internal/dto"
	apierrors "github.com/assignflow/assignment-api/internal/errors"
	"github.com/assignflow/assignment-api/internal/middleware"
	"github.com/assignflow/assignment-api/internal/services"
)

// AdminHandler coordinates the admin-role HTTP handlers.
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// Register creates an admin-role account.
func (h *AdminHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	id, err := h.adminService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		ID:      id,
		Message: "Admin registered successfully",
	})
}

// Login authenticates an admin and returns a bearer token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.adminService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(result))
}

// ListAssignments returns the caller's assignment queue, or another
// admin's queue when the admin query parameter names one.
func (h *AdminHandler) ListAssignments(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	assignments, err := h.adminService.ListAssignments(c.Request.Context(), caller, c.Query("admin"))
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentList(assignments))
}

// AcceptAssignment marks an assignment as accepted.
func (h *AdminHandler) AcceptAssignment(c *gin.Context) {
	h.setStatus(c, constants.StatusAccepted)
}

// RejectAssignment marks an assignment as rejected.
func (h *AdminHandler) RejectAssignment(c *gin.Context) {
	h.setStatus(c, constants.StatusRejected)
}

func (h *AdminHandler) setStatus(c *gin.Context, status string) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.adminService.SetAssignmentStatus(c.Request.Context(), caller, c.Param("id"), status); err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Assignment status updated successfully",
	})
}

func respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, "Username already taken")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Invalid username or password")
	case errors.Is(err, services.ErrNotAdmin):
		apierrors.Forbidden(c, "Not authorized as admin")
	case errors.Is(err, services.ErrInvalidAssignmentID):
		apierrors.BadRequest(c, "Invalid assignment ID")
	case errors.Is(err, services.ErrAssignmentNotFound):
		apierrors.NotFound(c, "Assignment not found")
	case errors.Is(err, services.ErrFailedToHashPassword),
		errors.Is(err, services.ErrFailedToIssueToken):
		apierrors.InternalError(c, "")
	default:
		apierrors.StorageUnavailable(c)
	}
}
