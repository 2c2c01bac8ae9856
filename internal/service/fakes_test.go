package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/spec-kit/team-service/internal/domain"
	"github.com/spec-kit/team-service/internal/repository"
)

type fakeTeamRepo struct {
	teams   map[string]domain.Team
	failErr error
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: map[string]domain.Team{}}
}

func (f *fakeTeamRepo) Create(_ context.Context, team *domain.Team) error {
	if f.failErr != nil {
		return f.failErr
	}
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	f.teams[team.ID] = *team
	return nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id string) (*domain.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &team, nil
}

func (f *fakeTeamRepo) List(_ context.Context) ([]domain.Team, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	result := make([]domain.Team, 0, len(f.teams))
	for _, team := range f.teams {
		result = append(result, team)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *fakeTeamRepo) Update(_ context.Context, id string, patch domain.TeamPatch) (*domain.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(&team)
	f.teams[id] = team
	return &team, nil
}

func (f *fakeTeamRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.teams[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.teams, id)
	return nil
}

type fakeEmployeeRepo struct {
	byTeam map[string][]domain.Employee
	calls  int
}

func (f *fakeEmployeeRepo) ListByTeamID(_ context.Context, teamID string) ([]domain.Employee, error) {
	f.calls++
	return append([]domain.Employee{}, f.byTeam[teamID]...), nil
}

func (f *fakeEmployeeRepo) ListByTeamIDs(_ context.Context, teamIDs []string) (map[string][]domain.Employee, error) {
	f.calls++
	result := make(map[string][]domain.Employee, len(teamIDs))
	for _, id := range teamIDs {
		result[id] = append([]domain.Employee{}, f.byTeam[id]...)
	}
	return result, nil
}
