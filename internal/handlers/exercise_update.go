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

// ExerciseReplacer defines the full-field exercise overwrite.
type ExerciseReplacer interface {
	Replace(ctx context.Context, ownerID, exerciseID int64, name string, description *string) (*models.ExerciseWithSets, error)
}

// NewUpdateExerciseHandler returns an HTTP handler replacing an exercise.
// Every field of the payload overwrites the stored value; a payload without
// a description clears the stored one.
// @Summary Replace exercise
// @Description Full-field overwrite of one of the caller's exercises
// @Tags exercises
// @Accept json
// @Produce json
// @Param exerciseID path int true "Exercise id"
// @Param request body handlers.ExerciseRequest true "Exercise payload"
// @Success 200 {object} handlers.ExerciseResponse "Updated exercise"
// @Failure 400 {object} handlers.ExerciseErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ExerciseErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ExerciseErrorResponse "Exercise not found"
// @Router /exercises/{exerciseID} [put]
// @Security BearerAuth
func NewUpdateExerciseHandler(svc ExerciseReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		exerciseID, err := pathID(r, "exerciseID")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ExerciseErrorResponse{
				Error: "invalid exercise id",
			})
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

		exercise, err := svc.Replace(r.Context(), user.ID, exerciseID, req.Name, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrExerciseNotFound):
				writeJSON(w, http.StatusNotFound, ExerciseErrorResponse{
					Error: "Exercise not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ExerciseErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, newExerciseResponse(exercise))
	}
}
