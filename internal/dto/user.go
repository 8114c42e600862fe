package dto

import "github.com/assignflow/assignment-api/internal/services"

// RegisterResponse is returned by both register endpoints.
type RegisterResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// LoginResponse is returned by both login endpoints.
type LoginResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AdminDTO represents an admin in the admin listing.
type AdminDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AdminListResponse wraps the admin listing.
type AdminListResponse struct {
	Admins []AdminDTO `json:"admins"`
}

// ToLoginResponse converts a login result to its wire shape.
func ToLoginResponse(result *services.LoginResult) LoginResponse {
	return LoginResponse{
		ID:          result.ID,
		Username:    result.Username,
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
	}
}

// ToAdminList converts admin summaries to their wire shape.
func ToAdminList(admins []services.AdminSummary) AdminListResponse {
	list := make([]AdminDTO, 0, len(admins))
	for _, a := range admins {
		list = append(list, AdminDTO{ID: a.ID, Username: a.Username})
	}
	return AdminListResponse{Admins: list}
}
