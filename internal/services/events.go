package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/avolkov/gym-tracker/internal/logger"
	"github.com/avolkov/gym-tracker/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a workout mutation event to Kafka. Publishing is
// fire and forget: failures are logged, never surfaced to the caller, and a
// nil writer disables publishing entirely.
func publishEvent(ctx context.Context, w KafkaWriter, userID int64, entity string, entityID int64, action string) {
	if w == nil {
		return
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "event_id", event.EventID, "error", err)
		return
	}

	logger.Log.Infow("event published",
		"event_id", event.EventID,
		"entity", entity,
		"entity_id", entityID,
		"action", action,
	)
}
