package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/avolkov/gym-tracker/internal/logger"
	"github.com/avolkov/gym-tracker/internal/models"
	"github.com/avolkov/gym-tracker/internal/token"
)

// Error variables
var (
	ErrUsernameAlreadyRegistered = errors.New("username already registered")
	ErrInvalidCredentials        = errors.New("incorrect username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByToken(ctx context.Context, tokenString string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, tokenString string) (*models.UserDB, error)
}

// AuthService handles registration, login and bearer-token resolution.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
	}
}

// Register creates a new user with a hashed password and a freshly issued
// opaque token. Returns ErrUsernameAlreadyRegistered when the username is
// taken.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("username already registered", "username", username)
		return nil, ErrUsernameAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	tokenString, err := token.Generate()
	if err != nil {
		logger.Log.Errorw("failed to issue token", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, string(hashedPassword), tokenString)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns the record carrying the token
// issued at registration. Unknown username and wrong password collapse into
// the same ErrInvalidCredentials so neither case is distinguishable.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("login for unknown username", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ResolveToken maps a bearer token to its user by exact match. Returns
// (nil, nil) for an unknown token; there is no expiry and no scopes.
func (svc *AuthService) ResolveToken(ctx context.Context, tokenString string) (*models.UserDB, error) {
	user, err := svc.reader.GetByToken(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("failed to resolve token", "err", err)
		return nil, err
	}
	return user, nil
}
