package services

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ActivityPublisher emits activity events to the at-least-once stream
// consumed by the achievement trigger and analytics pipelines. Publishing is
// best-effort and happens after the financial transaction has committed; a
// delivery failure is logged, never propagated back to the money path.
type ActivityPublisher struct {
	writer KafkaWriter
}

func NewActivityPublisher(writer KafkaWriter) *ActivityPublisher {
	return &ActivityPublisher{writer: writer}
}

// Publish sends one activity event keyed by its event ID.
func (p *ActivityPublisher) Publish(ctx context.Context, event models.ActivityEvent) {
	if p.writer == nil {
		logger.Log.Warnw("kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal activity event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish activity event", "event_id", event.EventID, "type", event.Type, "error", err)
	} else {
		logger.Log.Infow("activity event published", "event_id", event.EventID, "type", event.Type)
	}
}
