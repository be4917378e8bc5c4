package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Publisher is the part of a redis client the sink needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSink fans audit events out on a pub/sub channel so staff dashboards
// can refresh when an appointment changes.
type RedisSink struct {
	client  Publisher
	channel string
	timeout time.Duration
}

func NewRedisSink(client Publisher, channel string) *RedisSink {
	return &RedisSink{
		client:  client,
		channel: channel,
		timeout: 2 * time.Second,
	}
}

type message struct {
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id"`
	Metadata any    `json:"metadata,omitempty"`
	At       string `json:"at"`
}

func (s *RedisSink) Log(ev Event) error {
	payload, err := json.Marshal(message{
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: ev.Metadata,
		At:       time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	return s.client.Publish(ctx, s.channel, payload).Err()
}
