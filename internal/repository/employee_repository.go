package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/team-service/internal/domain"
)

// EmployeeRepository exposes the employee lookups teams are enriched with.
type EmployeeRepository interface {
	ListByTeamID(ctx context.Context, teamID string) ([]domain.Employee, error)
	ListByTeamIDs(ctx context.Context, teamIDs []string) (map[string][]domain.Employee, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository builds the repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

const employeeColumns = `id, name, surname, position, created_at, start_date, end_date, team_id`

// ListByTeamID is the single-team lookup; listing goes through ListByTeamIDs.
func (r *employeeRepository) ListByTeamID(ctx context.Context, teamID string) ([]domain.Employee, error) {
	const query = `
        SELECT ` + employeeColumns + `
        FROM employees WHERE team_id=$1
        ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Employee{}
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, employee)
	}
	return result, rows.Err()
}

// ListByTeamIDs returns employees grouped by team in a single query. Every
// requested id is present in the result, with an empty slice when it has no
// employees.
func (r *employeeRepository) ListByTeamIDs(ctx context.Context, teamIDs []string) (map[string][]domain.Employee, error) {
	result := make(map[string][]domain.Employee, len(teamIDs))
	for _, id := range teamIDs {
		result[id] = []domain.Employee{}
	}
	if len(teamIDs) == 0 {
		return result, nil
	}

	const query = `
        SELECT ` + employeeColumns + `
        FROM employees WHERE team_id = ANY($1)
        ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query, teamIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		if employee.TeamID == nil {
			continue
		}
		result[*employee.TeamID] = append(result[*employee.TeamID], employee)
	}
	return result, rows.Err()
}

func scanEmployee(row pgx.Row) (domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Surname,
		&e.Position,
		&e.CreatedAt,
		&e.StartDate,
		&e.EndDate,
		&e.TeamID,
	)
	return e, err
}
