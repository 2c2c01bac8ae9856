package dto

import (
	"time"

	"github.com/spec-kit/team-service/internal/domain"
)

// TeamRequest is the create/update payload. The id is never accepted from
// clients.
type TeamRequest struct {
	Name         *string               `json:"name"`
	ParentTeamID domain.OptionalString `json:"parent_team_id"`
}

// TeamResponse is the public shape of a team.
type TeamResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ParentTeamID *string `json:"parent_team_id"`
}

// TeamWithEmployeesResponse is a team entry in the list endpoint.
type TeamWithEmployeesResponse struct {
	TeamResponse
	Employees []EmployeeResponse `json:"employees"`
}

// EmployeeResponse is the public shape of an employee embedded in a team.
// Start and end dates are rendered as YYYY-MM-DD.
type EmployeeResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Surname   string     `json:"surname"`
	Position  string     `json:"position"`
	CreatedAt time.Time  `json:"created_at"`
	StartDate *string    `json:"start_date"`
	EndDate   *string    `json:"end_date"`
	TeamID    *string    `json:"team_id"`
}

// StatusResponse acknowledges an operation with no other result.
type StatusResponse struct {
	Status string `json:"status"`
}
