package handlers

import (
	"context"
	"net/http"

	"github.com/avolkov/gym-tracker/internal/logger"
	"github.com/avolkov/gym-tracker/internal/models"
)

// Pagination defaults when the query parameters are absent.
const (
	defaultSkip  = 0
	defaultLimit = 100
)

// ExerciseLister defines the interface that the service must implement.
type ExerciseLister interface {
	List(ctx context.Context, ownerID int64, skip, limit int) ([]models.ExerciseWithSets, error)
}

// NewListExercisesHandler returns an HTTP handler listing the caller's
// exercises with offset/limit pagination, ordered by id ascending.
// @Summary List exercises
// @Description Returns the caller's exercises with embedded sets
// @Tags exercises
// @Produce json
// @Param skip query int false "Number of exercises to skip" default(0)
// @Param limit query int false "Maximum number of exercises to return" default(100)
// @Success 200 {array} handlers.ExerciseResponse "Exercises"
// @Failure 400 {object} handlers.ExerciseErrorResponse "Invalid pagination parameters"
// @Failure 401 {object} handlers.ExerciseErrorResponse "Unauthorized"
// @Router /exercises/ [get]
// @Security BearerAuth
func NewListExercisesHandler(svc ExerciseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		skip, err := queryInt(r, "skip", defaultSkip)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ExerciseErrorResponse{
				Error: "invalid skip parameter",
			})
			return
		}
		limit, err := queryInt(r, "limit", defaultLimit)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ExerciseErrorResponse{
				Error: "invalid limit parameter",
			})
			return
		}

		exercises, err := svc.List(r.Context(), user.ID, skip, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ExerciseErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := make([]ExerciseResponse, 0, len(exercises))
		for i := range exercises {
			resp = append(resp, newExerciseResponse(&exercises[i]))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
