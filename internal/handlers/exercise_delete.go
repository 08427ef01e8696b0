package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/avolkov/gym-tracker/internal/logger"
	"github.com/avolkov/gym-tracker/internal/services"
)

// ExerciseDeleter defines the owner-scoped exercise deletion.
type ExerciseDeleter interface {
	Delete(ctx context.Context, ownerID, exerciseID int64) error
}

// NewDeleteExerciseHandler returns an HTTP handler deleting an exercise and,
// through the cascade, all of its sets.
// @Summary Delete exercise
// @Description Deletes one of the caller's exercises together with its sets
// @Tags exercises
// @Produce json
// @Param exerciseID path int true "Exercise id"
// @Success 204 "Exercise deleted"
// @Failure 401 {object} handlers.ExerciseErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ExerciseErrorResponse "Exercise not found"
// @Router /exercises/{exerciseID} [delete]
// @Security BearerAuth
func NewDeleteExerciseHandler(svc ExerciseDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), user.ID, exerciseID); err != nil {
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

		w.WriteHeader(http.StatusNoContent)
	}
}
