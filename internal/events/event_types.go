package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/team-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTeamCreated EventType = "team_created"
	EventTeamUpdated EventType = "team_updated"
	EventTeamDeleted EventType = "team_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TeamID    string      `json:"team_id"`
	Actor     string      `json:"actor,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// TeamPayload carries the team state after a create or update.
type TeamPayload struct {
	Name         string  `json:"name"`
	ParentTeamID *string `json:"parent_team_id"`
}

// NewTeamEvent builds an event for team. Deletions carry no payload.
func NewTeamEvent(eventType EventType, team domain.Team, actor string) Event {
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		TeamID:    team.ID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	}
	if eventType != EventTeamDeleted {
		event.Payload = TeamPayload{Name: team.Name, ParentTeamID: team.ParentTeamID}
	}
	return event
}
