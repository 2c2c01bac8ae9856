package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/team-service/internal/events"
)

// PublishTimeout bounds a single publish so an unreachable Redis cannot stall
// the request that emitted the event.
const PublishTimeout = 2 * time.Second

// RedisPublisher is the subset of the go-redis client used to fan out events.
type RedisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// TeamEventPublisher forwards team lifecycle events to a Redis pub/sub channel.
type TeamEventPublisher struct {
	client  RedisPublisher
	channel string
	logger  *zap.Logger
}

// NewTeamEventPublisher creates the publisher.
func NewTeamEventPublisher(client RedisPublisher, channel string, logger *zap.Logger) *TeamEventPublisher {
	return &TeamEventPublisher{client: client, channel: channel, logger: logger}
}

// Handle encodes the event as JSON and publishes it.
func (p *TeamEventPublisher) Handle(ctx context.Context, event events.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}
	ctx, cancel := context.WithTimeout(ctx, PublishTimeout)
	defer cancel()
	receivers, err := p.client.Publish(ctx, p.channel, body).Result()
	if err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}
	p.logger.Debug("team event published",
		zap.String("event_type", string(event.Type)),
		zap.String("team_id", event.TeamID),
		zap.String("channel", p.channel),
		zap.Int64("receivers", receivers))
	return nil
}

// StartTeamEventWorker subscribes the publisher to every team event type.
func StartTeamEventWorker(dispatcher events.Dispatcher, publisher *TeamEventPublisher) {
	if dispatcher == nil || publisher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventTeamCreated,
		events.EventTeamUpdated,
		events.EventTeamDeleted,
	} {
		dispatcher.Subscribe(eventType, publisher.Handle)
	}
}
