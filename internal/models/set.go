package models

import "time"

// SetDB represents a weight/repetitions record belonging to an exercise
type SetDB struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key
	ExerciseID  int64     `json:"exercise_id" db:"exercise_id"` // Parent exercise, non-nullable FK
	Weight      float64   `json:"weight" db:"weight"`           // Weight used
	Repetitions int64     `json:"repetitions" db:"repetitions"` // Repetition count
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
