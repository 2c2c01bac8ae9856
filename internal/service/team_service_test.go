package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/team-service/internal/domain"
	"github.com/spec-kit/team-service/internal/events"
	apperrors "github.com/spec-kit/team-service/pkg/util/errorutil"
)

func newTestTeamService(teams *fakeTeamRepo, employees *fakeEmployeeRepo, dispatcher events.Dispatcher) *TeamService {
	return NewTeamService(TeamDependencies{
		TeamRepo:     teams,
		EmployeeRepo: employees,
		Dispatcher:   dispatcher,
	})
}

func strPtr(s string) *string { return &s }

func TestCreateThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestTeamService(newFakeTeamRepo(), &fakeEmployeeRepo{}, nil)

	engineering, err := svc.Create(ctx, "tester", CreateTeamInput{Name: "Engineering"})
	require.NoError(t, err)
	require.NotEmpty(t, engineering.ID)
	require.Nil(t, engineering.ParentTeamID)

	backend, err := svc.Create(ctx, "tester", CreateTeamInput{Name: "Backend", ParentTeamID: &engineering.ID})
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, backend.ID)
	require.NoError(t, err)
	require.Equal(t, "Backend", fetched.Name)
	require.Equal(t, engineering.ID, *fetched.ParentTeamID)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestTeamService(newFakeTeamRepo(), &fakeEmployeeRepo{}, nil)

	_, err := svc.Create(ctx, "", CreateTeamInput{Name: "   "})
	require.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.Create(ctx, "", CreateTeamInput{Name: "Ops", ParentTeamID: strPtr("")})
	require.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestMissingTeamIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestTeamService(newFakeTeamRepo(), &fakeEmployeeRepo{}, nil)

	_, err := svc.Get(ctx, "missing")
	require.True(t, apperrors.IsNotFound(err))
	require.Equal(t, "Team not found", apperrors.ToDomainError(err).Message)

	_, err = svc.Update(ctx, "", "missing", domain.TeamPatch{Name: strPtr("x")})
	require.True(t, apperrors.IsNotFound(err))

	require.True(t, apperrors.IsNotFound(svc.Delete(ctx, "", "missing")))
}

func TestUpdateKeepsUnsetFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestTeamService(newFakeTeamRepo(), &fakeEmployeeRepo{}, nil)

	parent, err := svc.Create(ctx, "", CreateTeamInput{Name: "Engineering"})
	require.NoError(t, err)
	child, err := svc.Create(ctx, "", CreateTeamInput{Name: "Backend", ParentTeamID: &parent.ID})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "", child.ID, domain.TeamPatch{Name: strPtr("  Platform ")})
	require.NoError(t, err)
	require.Equal(t, "  Platform ", updated.Name)
	require.Equal(t, parent.ID, *updated.ParentTeamID)

	updated, err = svc.Update(ctx, "", child.ID, domain.TeamPatch{ParentTeamID: domain.NewOptionalString(nil)})
	require.NoError(t, err)
	require.Equal(t, "  Platform ", updated.Name)
	require.Nil(t, updated.ParentTeamID)

	_, err = svc.Update(ctx, "", child.ID, domain.TeamPatch{Name: strPtr("")})
	require.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestTeamService(newFakeTeamRepo(), &fakeEmployeeRepo{}, nil)

	team, err := svc.Create(ctx, "", CreateTeamInput{Name: "Ops"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "", team.ID))
	require.True(t, apperrors.IsNotFound(svc.Delete(ctx, "", team.ID)))
}

func TestListEnrichesWithEmployees(t *testing.T) {
	ctx := context.Background()
	teams := newFakeTeamRepo()
	employees := &fakeEmployeeRepo{byTeam: map[string][]domain.Employee{}}
	svc := newTestTeamService(teams, employees, nil)

	engineering, err := svc.Create(ctx, "", CreateTeamInput{Name: "Engineering"})
	require.NoError(t, err)
	backend, err := svc.Create(ctx, "", CreateTeamInput{Name: "Backend", ParentTeamID: &engineering.ID})
	require.NoError(t, err)
	employees.byTeam[backend.ID] = []domain.Employee{{ID: "e1", Name: "Ada", TeamID: &backend.ID}}

	require.NoError(t, svc.Delete(ctx, "", engineering.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, backend.ID, list[0].ID)
	require.Equal(t, engineering.ID, *list[0].ParentTeamID)
	require.Len(t, list[0].Employees, 1)
	require.Equal(t, 1, employees.calls)
}

func TestListEmptyTeamHasEmptyEmployees(t *testing.T) {
	ctx := context.Background()
	svc := newTestTeamService(newFakeTeamRepo(), &fakeEmployeeRepo{}, nil)

	_, err := svc.Create(ctx, "", CreateTeamInput{Name: "Solo"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, list[0].Employees)
	require.Empty(t, list[0].Employees)
}

func TestStorageFailureIsInternal(t *testing.T) {
	ctx := context.Background()
	teams := newFakeTeamRepo()
	teams.failErr = errors.New("connection refused")
	svc := newTestTeamService(teams, &fakeEmployeeRepo{}, nil)

	_, err := svc.Create(ctx, "", CreateTeamInput{Name: "Ops"})
	require.Equal(t, "INTERNAL_ERROR", apperrors.ToDomainError(err).Code)

	_, err = svc.List(ctx)
	require.Equal(t, "INTERNAL_ERROR", apperrors.ToDomainError(err).Code)
}

func TestWritesPublishEvents(t *testing.T) {
	ctx := context.Background()
	dispatcher := events.NewInMemoryDispatcher()
	var got []events.Event
	record := func(_ context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	}
	dispatcher.Subscribe(events.EventTeamCreated, record)
	dispatcher.Subscribe(events.EventTeamUpdated, record)
	dispatcher.Subscribe(events.EventTeamDeleted, func(ctx context.Context, e events.Event) error {
		_ = record(ctx, e)
		return errors.New("sink down")
	})

	svc := newTestTeamService(newFakeTeamRepo(), &fakeEmployeeRepo{}, dispatcher)

	team, err := svc.Create(ctx, "frontend", CreateTeamInput{Name: "Ops"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "frontend", team.ID, domain.TeamPatch{Name: strPtr("SRE")})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "frontend", team.ID))

	require.Len(t, got, 3)
	require.Equal(t, events.EventTeamCreated, got[0].Type)
	require.Equal(t, events.EventTeamUpdated, got[1].Type)
	require.Equal(t, events.EventTeamDeleted, got[2].Type)
	for _, e := range got {
		require.Equal(t, team.ID, e.TeamID)
		require.Equal(t, "frontend", e.Actor)
	}
}
