package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/team-service/internal/domain"
	"github.com/spec-kit/team-service/internal/repository"
)

func TestTeamRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository()

	parent := &domain.Team{Name: "Engineering"}
	require.NoError(t, repo.Create(ctx, parent))
	require.NotEmpty(t, parent.ID)

	child := &domain.Team{Name: "Backend", ParentTeamID: &parent.ID}
	require.NoError(t, repo.Create(ctx, child))

	name := "Platform"
	updated, err := repo.Update(ctx, child.ID, domain.TeamPatch{Name: &name})
	require.NoError(t, err)
	require.Equal(t, parent.ID, *updated.ParentTeamID)

	*updated.ParentTeamID = "mutated"
	stored, err := repo.GetByID(ctx, child.ID)
	require.NoError(t, err)
	require.Equal(t, parent.ID, *stored.ParentTeamID)

	require.NoError(t, repo.Delete(ctx, parent.ID))
	require.ErrorIs(t, repo.Delete(ctx, parent.ID), repository.ErrNotFound)
	_, err = repo.GetByID(ctx, parent.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	teams, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
}

func TestEmployeeRepositoryGroupsByTeam(t *testing.T) {
	ctx := context.Background()
	t1, t2 := "t1", "t2"
	repo := NewEmployeeRepository(
		domain.Employee{ID: "e1", TeamID: &t1},
		domain.Employee{ID: "e2", TeamID: &t2},
		domain.Employee{ID: "e3"},
	)
	repo.Add(domain.Employee{ID: "e4", TeamID: &t1})

	grouped, err := repo.ListByTeamIDs(ctx, []string{"t1", "t2", "t3"})
	require.NoError(t, err)
	require.Len(t, grouped["t1"], 2)
	require.Len(t, grouped["t2"], 1)
	require.Empty(t, grouped["t3"])
}
