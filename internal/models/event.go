package models

// Event actions published to Kafka on mutations.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Entities referenced by events.
const (
	EntityExercise = "exercise"
	EntitySet      = "set"
)

// Event represents a workout mutation event published to Kafka
type Event struct {
	EventID   string `json:"event_id"`  // Unique event id
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the mutation
	UserID    int64  `json:"user_id"`   // Owner of the mutated entity
	Entity    string `json:"entity"`    // "exercise" or "set"
	EntityID  int64  `json:"entity_id"` // Id of the mutated entity
	Action    string `json:"action"`    // "created", "updated" or "deleted"
}
