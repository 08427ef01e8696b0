package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avolkov/gym-tracker/internal/logger"
	"github.com/avolkov/gym-tracker/internal/models"
)

// ExerciseCreator defines the interface that the service must implement.
type ExerciseCreator interface {
	Create(ctx context.Context, ownerID int64, name string, description *string) (*models.ExerciseWithSets, error)
}

// ExerciseRequest represents the JSON body for creating or replacing an
// exercise. An omitted description is stored as null on replace.
// swagger:model ExerciseRequest
type ExerciseRequest struct {
	// Exercise name
	// required: true
	// default: Squats
	Name string `json:"name"`

	// Optional description
	// default: Leg exercise
	Description *string `json:"description"`
}

// ExerciseErrorResponse represents an error response for exercise endpoints
// swagger:model ExerciseErrorResponse
type ExerciseErrorResponse struct {
	// Error message
	// default: Exercise not found
	Error string `json:"error"`
}

// NewCreateExerciseHandler returns an HTTP handler for creating an exercise
// owned by the authenticated user.
// @Summary Create exercise
// @Description Creates a new exercise owned by the caller
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body handlers.ExerciseRequest true "Exercise payload"
// @Success 200 {object} handlers.ExerciseResponse "Created exercise"
// @Failure 400 {object} handlers.ExerciseErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ExerciseErrorResponse "Unauthorized"
// @Router /exercises/ [post]
// @Security BearerAuth
func NewCreateExerciseHandler(svc ExerciseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req ExerciseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ExerciseErrorResponse{
				Error: "invalid request body",
			})
			return
		}
		if req.Name == "" {
			writeJSON(w, http.StatusBadRequest, ExerciseErrorResponse{
				Error: "name is required",
			})
			return
		}

		exercise, err := svc.Create(r.Context(), user.ID, req.Name, req.Description)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ExerciseErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		writeJSON(w, http.StatusOK, newExerciseResponse(exercise))
	}
}
