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

// SetReplacer defines the full-field set overwrite behind the ownership chain.
type SetReplacer interface {
	Replace(ctx context.Context, ownerID, exerciseID, setID int64, weight float64, repetitions int64) (*models.SetDB, error)
}

// NewUpdateSetHandler returns an HTTP handler replacing a set. The set must
// resolve through set id, exercise id and owner id together; any mismatch
// answers 404.
// @Summary Replace set
// @Description Full-field overwrite of a set under the caller's exercise
// @Tags sets
// @Accept json
// @Produce json
// @Param exerciseID path int true "Exercise id"
// @Param setID path int true "Set id"
// @Param request body handlers.SetRequest true "Set payload"
// @Success 200 {object} handlers.SetResponse "Updated set"
// @Failure 400 {object} handlers.SetErrorResponse "Invalid request"
// @Failure 401 {object} handlers.SetErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SetErrorResponse "Set not found"
// @Router /exercises/{exerciseID}/sets/{setID} [put]
// @Security BearerAuth
func NewUpdateSetHandler(svc SetReplacer) http.HandlerFunc {
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

		var req SetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, SetErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		set, err := svc.Replace(r.Context(), user.ID, exerciseID, setID, req.Weight, req.Repetitions)
		if err != nil {
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

		writeJSON(w, http.StatusOK, newSetResponse(set))
	}
}
