package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avolkov/gym-tracker/internal/middlewares"
	"github.com/avolkov/gym-tracker/internal/models"
)

// currentUser returns the user resolved by the auth middleware. Routes are
// only mounted behind the middleware, so a missing user means a wiring bug;
// it is still answered with 401 rather than a panic.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.UserDB, bool) {
	user := middlewares.GetUserFromContext(r.Context())
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error": "Invalid authentication credentials",
		})
		return nil, false
	}
	return user, true
}

// pathID parses the named chi URL parameter as an int64.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or empty.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
