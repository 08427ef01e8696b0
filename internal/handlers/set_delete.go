package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/avolkov/gym-tracker/internal/logger"
	"github.com/avolkov/gym-tracker/internal/services"
)

// SetDeleter defines the set deletion behind the ownership chain.
type SetDeleter interface {
	Delete(ctx context.Context, ownerID, exerciseID, setID int64) error
}

// NewDeleteSetHandler returns an HTTP handler deleting a single set.
// @Summary Delete set
// @Description Deletes a set under the caller's exercise
// @Tags sets
// @Produce json
// @Param exerciseID path int true "Exercise id"
// @Param setID path int true "Set id"
// @Success 204 "Set deleted"
// @Failure 401 {object} handlers.SetErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SetErrorResponse "Set not found"
// @Router /exercises/{exerciseID}/sets/{setID} [delete]
// @Security BearerAuth
func NewDeleteSetHandler(svc SetDeleter) http.HandlerFunc {
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
		setID, err := pathID(r, "setID")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, SetErrorResponse{
				Error: "invalid set id",
			})
			return
		}

		if err := svc.Delete(r.Context(), user.ID, exerciseID, setID); err != nil {
			switch {
			case errors.Is(err, services.ErrSetNotFound):
				writeJSON(w, http.StatusNotFound, SetErrorResponse{
					Error: "Set not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, SetErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
