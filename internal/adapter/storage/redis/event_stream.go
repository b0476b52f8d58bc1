package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// EventStream implements ports.EventSink by publishing committed ledger
// events to a Redis stream. Downstream consumers (dashboards, notifiers)
// read with XREAD; the ledger never reads back.
type EventStream struct {
	client *goredis.Client
	stream string
}

// NewEventStream creates a Redis stream publisher for the given stream key.
func NewEventStream(client *goredis.Client, stream string) *EventStream {
	return &EventStream{client: client, stream: stream}
}

// Append publishes one committed event.
func (s *EventStream) Append(ctx context.Context, ev domain.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = s.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"seq":     ev.Seq,
			"kind":    string(ev.Kind),
			"payload": payload,
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("redis xadd: %w", err)
	}
	return nil
}
