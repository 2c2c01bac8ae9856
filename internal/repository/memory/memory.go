// Package memory provides process-local repositories used when no Postgres
// DSN is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/spec-kit/team-service/internal/domain"
	"github.com/spec-kit/team-service/internal/repository"
)

// TeamRepository keeps teams in a map.
type TeamRepository struct {
	mu    sync.RWMutex
	teams map[string]domain.Team
}

// NewTeamRepository returns an empty repository.
func NewTeamRepository() *TeamRepository {
	return &TeamRepository{teams: make(map[string]domain.Team)}
}

var _ repository.TeamRepository = (*TeamRepository)(nil)

func (r *TeamRepository) Create(_ context.Context, team *domain.Team) error {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[team.ID] = cloneTeam(*team)
	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (*domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	team, ok := r.teams[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	team = cloneTeam(team)
	return &team, nil
}

func (r *TeamRepository) List(_ context.Context) ([]domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Team, 0, len(r.teams))
	for _, team := range r.teams {
		result = append(result, cloneTeam(team))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name == result[j].Name {
			return result[i].ID < result[j].ID
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (r *TeamRepository) Update(_ context.Context, id string, patch domain.TeamPatch) (*domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	team, ok := r.teams[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(&team)
	r.teams[id] = cloneTeam(team)
	updated := cloneTeam(team)
	return &updated, nil
}

func (r *TeamRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.teams, id)
	return nil
}

// EmployeeRepository keeps employees in insertion order.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []domain.Employee
}

// NewEmployeeRepository returns a repository seeded with employees.
func NewEmployeeRepository(employees ...domain.Employee) *EmployeeRepository {
	return &EmployeeRepository{employees: append([]domain.Employee{}, employees...)}
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)

// Add stores an employee.
func (r *EmployeeRepository) Add(employee domain.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees = append(r.employees, employee)
}

func (r *EmployeeRepository) ListByTeamID(_ context.Context, teamID string) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.Employee{}
	for _, e := range r.employees {
		if e.TeamID != nil && *e.TeamID == teamID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *EmployeeRepository) ListByTeamIDs(ctx context.Context, teamIDs []string) (map[string][]domain.Employee, error) {
	result := make(map[string][]domain.Employee, len(teamIDs))
	for _, id := range teamIDs {
		employees, err := r.ListByTeamID(ctx, id)
		if err != nil {
			return nil, err
		}
		result[id] = employees
	}
	return result, nil
}

func cloneTeam(team domain.Team) domain.Team {
	if team.ParentTeamID != nil {
		parent := *team.ParentTeamID
		team.ParentTeamID = &parent
	}
	return team
}
