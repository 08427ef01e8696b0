// Package token implements the opaque bearer tokens used for authentication.
// A token is a random hex string issued once at registration; it carries no
// structure the server decodes, identity is resolved by exact-match lookup.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// entropyBytes is the amount of randomness per token. 16 bytes encode to a
// 32-character hex string; uniqueness is enforced by the storage layer.
const entropyBytes = 16

var (
	// ErrMissingAuthHeader is returned when the Authorization header is absent.
	ErrMissingAuthHeader = errors.New("authorization header missing")
	// ErrInvalidAuthHeader is returned when the Authorization header is not a bearer scheme.
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// Generate returns a new cryptographically random opaque token.
func Generate() (string, error) {
	buf := make([]byte, entropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// FromRequest extracts the bearer token from the Authorization header.
func FromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}
