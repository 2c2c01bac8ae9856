package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/team-service/internal/domain"
	"github.com/spec-kit/team-service/internal/events"
	"github.com/spec-kit/team-service/internal/repository"
	apperrors "github.com/spec-kit/team-service/pkg/util/errorutil"
)

// TeamService manages the team lifecycle and composes teams with employees.
type TeamService struct {
	teams      repository.TeamRepository
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// TeamDependencies encapsulates collaborators required for team management.
type TeamDependencies struct {
	TeamRepo     repository.TeamRepository
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// TeamWithEmployees is a team enriched with the employees assigned to it.
type TeamWithEmployees struct {
	domain.Team
	Employees []domain.Employee
}

// CreateTeamInput carries the client-settable fields of a new team.
type CreateTeamInput struct {
	Name         string
	ParentTeamID *string
}

// NewTeamService constructs the service.
func NewTeamService(deps TeamDependencies) *TeamService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeamService{
		teams:      deps.TeamRepo,
		employees:  deps.EmployeeRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// List returns every team with its employees attached. Employees are fetched
// in one batched lookup keyed by all team ids.
func (s *TeamService) List(ctx context.Context) ([]TeamWithEmployees, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	ids := make([]string, 0, len(teams))
	for _, team := range teams {
		ids = append(ids, team.ID)
	}
	byTeam, err := s.employees.ListByTeamIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	result := make([]TeamWithEmployees, 0, len(teams))
	for _, team := range teams {
		employees := byTeam[team.ID]
		if employees == nil {
			employees = []domain.Employee{}
		}
		result = append(result, TeamWithEmployees{Team: team, Employees: employees})
	}
	return result, nil
}

// Create validates and persists a new team. The id is always server-generated.
func (s *TeamService) Create(ctx context.Context, actor string, input CreateTeamInput) (*domain.Team, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name is required", map[string]any{"name": "required"})
	}
	if err := validateParentTeamID(input.ParentTeamID); err != nil {
		return nil, err
	}

	team := &domain.Team{Name: input.Name, ParentTeamID: input.ParentTeamID}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.NewTeamEvent(events.EventTeamCreated, *team, actor))
	return team, nil
}

// Get fetches a single team.
func (s *TeamService) Get(ctx context.Context, id string) (*domain.Team, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return nil, mapTeamError(err)
	}
	return team, nil
}

// Update applies patch to the team; unset fields keep their stored values.
func (s *TeamService) Update(ctx context.Context, actor, id string, patch domain.TeamPatch) (*domain.Team, error) {
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperrors.NewValidationError("name must not be empty", map[string]any{"name": "empty"})
		}
	}
	if patch.ParentTeamID.Set {
		if err := validateParentTeamID(patch.ParentTeamID.Value); err != nil {
			return nil, err
		}
	}

	team, err := s.teams.Update(ctx, id, patch)
	if err != nil {
		return nil, mapTeamError(err)
	}

	s.publish(ctx, events.NewTeamEvent(events.EventTeamUpdated, *team, actor))
	return team, nil
}

// Delete removes the team. Teams referencing it as parent are left untouched.
func (s *TeamService) Delete(ctx context.Context, actor, id string) error {
	if err := s.teams.Delete(ctx, id); err != nil {
		return mapTeamError(err)
	}

	s.publish(ctx, events.NewTeamEvent(events.EventTeamDeleted, domain.Team{ID: id}, actor))
	return nil
}

func (s *TeamService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("team event delivery failed",
			zap.String("event_type", string(event.Type)),
			zap.String("team_id", event.TeamID),
			zap.Error(err))
	}
}

func validateParentTeamID(parentID *string) error {
	if parentID != nil && strings.TrimSpace(*parentID) == "" {
		return apperrors.NewValidationError("parent_team_id must not be empty", map[string]any{"parent_team_id": "empty"})
	}
	return nil
}

func mapTeamError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("Team", nil)
	}
	return apperrors.MapError(err)
}
