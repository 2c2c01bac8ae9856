package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/team-service/internal/api/dto"
	"github.com/spec-kit/team-service/internal/auth"
	"github.com/spec-kit/team-service/internal/domain"
	"github.com/spec-kit/team-service/internal/service"
	apperrors "github.com/spec-kit/team-service/pkg/util/errorutil"
)

// TeamsHandler exposes team CRUD endpoints.
type TeamsHandler struct {
	teams *service.TeamService
}

// NewTeamsHandler constructs handler.
func NewTeamsHandler(teamService *service.TeamService) *TeamsHandler {
	return &TeamsHandler{teams: teamService}
}

// List handles GET /teams.
func (h *TeamsHandler) List(c *fiber.Ctx) error {
	teams, err := h.teams.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.TeamWithEmployeesResponse, 0, len(teams))
	for i := range teams {
		resp = append(resp, teamWithEmployeesResponse(&teams[i]))
	}
	return c.JSON(resp)
}

// Create handles POST /teams.
func (h *TeamsHandler) Create(c *fiber.Ctx) error {
	req, err := parseTeamRequest(c)
	if err != nil {
		return err
	}
	if req.Name == nil {
		return apperrors.NewValidationError("name is required", map[string]any{"name": "required"})
	}

	team, err := h.teams.Create(c.UserContext(), actorID(c), service.CreateTeamInput{
		Name:         *req.Name,
		ParentTeamID: req.ParentTeamID.Value,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(teamResponse(team))
}

// Get handles GET /teams/:team_id.
func (h *TeamsHandler) Get(c *fiber.Ctx) error {
	team, err := h.teams.Get(c.UserContext(), teamIDParam(c))
	if err != nil {
		return err
	}
	return c.JSON(teamResponse(team))
}

// Update handles PUT /teams/:team_id. Fields missing from the body keep their
// stored values; an explicit null parent_team_id detaches the team.
func (h *TeamsHandler) Update(c *fiber.Ctx) error {
	req, err := parseTeamRequest(c)
	if err != nil {
		return err
	}

	team, err := h.teams.Update(c.UserContext(), actorID(c), teamIDParam(c), domain.TeamPatch{
		Name:         req.Name,
		ParentTeamID: req.ParentTeamID,
	})
	if err != nil {
		return err
	}
	return c.JSON(teamResponse(team))
}

// Delete handles DELETE /teams/:team_id.
func (h *TeamsHandler) Delete(c *fiber.Ctx) error {
	if err := h.teams.Delete(c.UserContext(), actorID(c), teamIDParam(c)); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}

func parseTeamRequest(c *fiber.Ctx) (*dto.TeamRequest, error) {
	var req dto.TeamRequest
	if len(c.Body()) == 0 {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	return &req, nil
}

func teamIDParam(c *fiber.Ctx) string {
	return c.Params("+")
}

func actorID(c *fiber.Ctx) string {
	if principal, ok := auth.PrincipalFromContext(c); ok {
		return principal.SubjectID
	}
	return ""
}

func teamResponse(team *domain.Team) dto.TeamResponse {
	return dto.TeamResponse{
		ID:           team.ID,
		Name:         team.Name,
		ParentTeamID: team.ParentTeamID,
	}
}

func teamWithEmployeesResponse(team *service.TeamWithEmployees) dto.TeamWithEmployeesResponse {
	employees := make([]dto.EmployeeResponse, 0, len(team.Employees))
	for _, e := range team.Employees {
		employees = append(employees, dto.EmployeeResponse{
			ID:        e.ID,
			Name:      e.Name,
			Surname:   e.Surname,
			Position:  e.Position,
			CreatedAt: e.CreatedAt,
			StartDate: formatDate(e.StartDate),
			EndDate:   formatDate(e.EndDate),
			TeamID:    e.TeamID,
		})
	}
	return dto.TeamWithEmployeesResponse{
		TeamResponse: teamResponse(&team.Team),
		Employees:    employees,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	value := t.Format(time.DateOnly)
	return &value
}
