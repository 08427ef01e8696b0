package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkov/gym-tracker/internal/logger"
	"github.com/avolkov/gym-tracker/internal/models"
	"github.com/avolkov/gym-tracker/internal/services"
)

// SetCreator defines the interface that the service must implement. The
// handler validates ownership of the parent exercise before calling it.
type SetCreator interface {
	Create(ctx context.Context, ownerID, exerciseID int64, weight float64, repetitions int64) (*models.SetDB, error)
}

// SetRequest represents the JSON body for creating or replacing a set
// swagger:model SetRequest
type SetRequest struct {
	// Weight used
	// required: true
	// default: 50.0
	Weight float64 `json:"weight"`

	// Repetition count
	// required: true
	// default: 10
	Repetitions int64 `json:"repetitions"`
}

// SetErrorResponse represents an error response for set endpoints
// swagger:model SetErrorResponse
type SetErrorResponse struct {
	// Error message
	// default: Set not found
	Error string `json:"error"`
}

// NewCreateSetHandler returns an HTTP handler creating a set under one of
// the caller's exercises. The exercise is resolved through the owner-scoped
// lookup first; an exercise owned by someone else answers 404.
// @Summary Create set
// @Description Creates a weight/repetitions record under the caller's exercise
// @Tags sets
// @Accept json
// @Produce json
// @Param exerciseID path int true "Exercise id"
// @Param request body handlers.SetRequest true "Set payload"
// @Success 200 {object} handlers.SetResponse "Created set"
// @Failure 400 {object} handlers.SetErrorResponse "Invalid request"
// @Failure 401 {object} handlers.SetErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SetErrorResponse "Exercise not found"
// @Router /exercises/{exerciseID}/sets/ [post]
// @Security BearerAuth
func NewCreateSetHandler(exercises ExerciseGetter, svc SetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		exerciseID, err := pathID(r, "exerciseID")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, SetErrorResponse{
				Error: "invalid exercise id",
			})
			return
		}

		var req SetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, SetErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		// Authorization gate: the set is created only after the exercise
		// resolves under the caller's id.
		exercise, err := exercises.Get(r.Context(), user.ID, exerciseID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrExerciseNotFound):
				writeJSON(w, http.StatusNotFound, SetErrorResponse{
					Error: "Exercise not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, SetErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		set, err := svc.Create(r.Context(), user.ID, exercise.ID, req.Weight, req.Repetitions)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, SetErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		writeJSON(w, http.StatusOK, newSetResponse(set))
	}
}
