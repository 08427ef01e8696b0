package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avolkov/gym-tracker/internal/logger"
	"github.com/avolkov/gym-tracker/internal/models"
	"github.com/avolkov/gym-tracker/internal/token"
)

// TokenResolver maps an opaque bearer token to its user. A (nil, nil)
// return means the token is unknown.
type TokenResolver interface {
	ResolveToken(ctx context.Context, tokenString string) (*models.UserDB, error)
}

type userContextKey struct{}

var userKey = userContextKey{}

// AuthMiddleware resolves the caller's identity from the Authorization
// header and stores the user in the request context. Requests with a
// missing or unknown token are rejected with 401 before reaching handlers.
func AuthMiddleware(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := token.FromRequest(r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeAuthError(w)
				return
			}

			user, err := resolver.ResolveToken(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("token resolution failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil {
				logger.Log.Infow("authorization failed", "err", "unknown token")
				writeAuthError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error": "Invalid authentication credentials",
	})
}

// SetUserToContext stores the authenticated user in the context
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user stored by
// AuthMiddleware. Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
