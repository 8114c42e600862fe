package dto

import (
	"time"

	"github.com/assignflow/assignment-api/internal/models"
)

// AssignmentDTO represents an assignment in API responses.
type AssignmentDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Task      string    `json:"task"`
	Admin     string    `json:"admin"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// AssignmentListResponse wraps the assignment listing.
type AssignmentListResponse struct {
	Assignments []AssignmentDTO `json:"assignments"`
}

// ToAssignmentList converts assignment documents to their wire shape.
func ToAssignmentList(assignments []models.Assignment) AssignmentListResponse {
	list := make([]AssignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		list = append(list, AssignmentDTO{
			ID:        a.ID.Hex(),
			UserID:    a.UserID,
			Task:      a.Task,
			Admin:     a.Admin,
			Status:    a.Status,
			Timestamp: a.Timestamp,
		})
	}
	return AssignmentListResponse{Assignments: list}
}
