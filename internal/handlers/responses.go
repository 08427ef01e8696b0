package handlers

import "github.com/avolkov/gym-tracker/internal/models"

// UserResponse represents a user returned by registration and login
// swagger:model UserResponse
type UserResponse struct {
	// User id
	// default: 1
	ID int64 `json:"id"`

	// Username
	// default: john_doe
	Username string `json:"username"`

	// Opaque bearer token
	// default: 9f3c0a1b2d4e5f60718293a4b5c6d7e8
	Token string `json:"token"`
}

// SetResponse represents a weight/repetitions record
// swagger:model SetResponse
type SetResponse struct {
	// Set id
	// default: 1
	ID int64 `json:"id"`

	// Weight used
	// default: 50.0
	Weight float64 `json:"weight"`

	// Repetition count
	// default: 10
	Repetitions int64 `json:"repetitions"`
}

// ExerciseResponse represents an exercise with its embedded sets
// swagger:model ExerciseResponse
type ExerciseResponse struct {
	// Exercise id
	// default: 1
	ID int64 `json:"id"`

	// Exercise name
	// default: Squats
	Name string `json:"name"`

	// Optional description, null when absent
	// default: Leg exercise
	Description *string `json:"description"`

	// Child sets, empty array when none exist
	Sets []SetResponse `json:"sets"`
}

func newUserResponse(user *models.UserDB) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    user.Token,
	}
}

func newSetResponse(set *models.SetDB) SetResponse {
	return SetResponse{
		ID:          set.ID,
		Weight:      set.Weight,
		Repetitions: set.Repetitions,
	}
}

func newExerciseResponse(exercise *models.ExerciseWithSets) ExerciseResponse {
	sets := make([]SetResponse, 0, len(exercise.Sets))
	for i := range exercise.Sets {
		sets = append(sets, newSetResponse(&exercise.Sets[i]))
	}
	return ExerciseResponse{
		ID:          exercise.ID,
		Name:        exercise.Name,
		Description: exercise.Description,
		Sets:        sets,
	}
}
