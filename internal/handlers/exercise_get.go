package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/avolkov/gym-tracker/internal/logger"
	"github.com/avolkov/gym-tracker/internal/models"
	"github.com/avolkov/gym-tracker/internal/services"
)

// ExerciseGetter defines the owner-scoped exercise lookup.
type ExerciseGetter interface {
	Get(ctx context.Context, ownerID, exerciseID int64) (*models.ExerciseWithSets, error)
}

// NewGetExerciseHandler returns an HTTP handler fetching a single exercise.
// An exercise owned by someone else answers 404 exactly like an absent one.
// @Summary Get exercise
// @Description Returns one of the caller's exercises with embedded sets
// @Tags exercises
// @Produce json
// @Param exerciseID path int true "Exercise id"
// @Success 200 {object} handlers.ExerciseResponse "Exercise"
// @Failure 401 {object} handlers.ExerciseErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ExerciseErrorResponse "Exercise not found"
// @Router /exercises/{exerciseID} [get]
// @Security BearerAuth
func NewGetExerciseHandler(svc ExerciseGetter) http.HandlerFunc {
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

		exercise, err := svc.Get(r.Context(), user.ID, exerciseID)
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
