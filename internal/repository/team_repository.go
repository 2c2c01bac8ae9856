package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/team-service/internal/domain"
)

// TeamRepository manages persistence for teams.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
	Update(ctx context.Context, id string, patch domain.TeamPatch) (*domain.Team, error)
	Delete(ctx context.Context, id string) error
}

type teamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository constructs repository.
func NewTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &teamRepository{pool: pool}
}

// Create inserts the team, assigning a UUID when the caller left ID empty.
func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO teams (id, name, parent_team_id)
        VALUES ($1,$2,$3)
        RETURNING id, name, parent_team_id`
	return r.pool.QueryRow(ctx, query,
		team.ID,
		team.Name,
		team.ParentTeamID,
	).Scan(&team.ID, &team.Name, &team.ParentTeamID)
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	const query = `
        SELECT id, name, parent_team_id
        FROM teams WHERE id=$1`
	var team domain.Team
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.ParentTeamID,
	); err != nil {
		return nil, translateNoRows(err)
	}
	return &team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]domain.Team, error) {
	const query = `
        SELECT id, name, parent_team_id
        FROM teams ORDER BY name, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Team{}
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.ParentTeamID); err != nil {
			return nil, err
		}
		result = append(result, team)
	}
	return result, rows.Err()
}

// Update writes only the fields set in patch. An empty patch is a read.
func (r *teamRepository) Update(ctx context.Context, id string, patch domain.TeamPatch) (*domain.Team, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	args := []any{}
	sets := []string{}
	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name=$%d", len(args)))
	}
	if patch.ParentTeamID.Set {
		args = append(args, patch.ParentTeamID.Value)
		sets = append(sets, fmt.Sprintf("parent_team_id=$%d", len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(`
        UPDATE teams SET %s
        WHERE id=$%d
        RETURNING id, name, parent_team_id`, strings.Join(sets, ", "), len(args))

	var team domain.Team
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&team.ID,
		&team.Name,
		&team.ParentTeamID,
	); err != nil {
		return nil, translateNoRows(err)
	}
	return &team, nil
}

// Delete removes the team. Children keep their parent_team_id.
func (r *teamRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM teams WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
