package models

import "time"

// ExerciseDB represents an exercise record in the database
type ExerciseDB struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key
	OwnerID     int64     `json:"owner_id" db:"owner_id"`       // Owning user, non-nullable FK
	Name        string    `json:"name" db:"name"`               // Exercise name
	Description *string   `json:"description" db:"description"` // Optional free-text description
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// ExerciseWithSets is an exercise together with its child sets, as exposed
// through the API.
type ExerciseWithSets struct {
	ExerciseDB
	Sets []SetDB `json:"sets"`
}
