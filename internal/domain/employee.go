package domain

import "time"

// Employee is a person assigned to a team. Only read access is provided here.
type Employee struct {
	ID        string
	Name      string
	Surname   string
	Position  string
	CreatedAt time.Time
	StartDate *time.Time
	EndDate   *time.Time
	TeamID    *string
}
