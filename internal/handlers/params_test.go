package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/avolkov/gym-tracker/internal/middlewares"
	"github.com/avolkov/gym-tracker/internal/models"
)

// testUser is the authenticated caller shared by handler tests.
var testUser = &models.UserDB{ID: 10, Username: "alice", Token: "deadbeefdeadbeefdeadbeefdeadbeef"}

// serveAuthed routes the request through a chi router so URL parameters
// resolve, with user stored in the context the way the auth middleware
// stores it. A nil user simulates a request that skipped the middleware.
func serveAuthed(method, pattern, target string, body io.Reader, user *models.UserDB, handler http.HandlerFunc) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, handler)

	req := httptest.NewRequest(method, target, body)
	if user != nil {
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
