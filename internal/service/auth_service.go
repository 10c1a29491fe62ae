package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"transfermarkt_gateway/internal/logger"
	"transfermarkt_gateway/internal/models"
	"transfermarkt_gateway/internal/repository"
)

// Domain errors for auth flows.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login and bearer-token resolution.
//
// The credential scheme is a deliberate placeholder carried over from the
// deployed system: unsalted single-round sha256 for passwords and a
// timestamp-salted sha256 for tokens. NewAuthService logs a warning so the
// weakness is flagged rather than silently preserved.
type AuthService struct {
	users repository.Users
	now   func() time.Time
}

func NewAuthService(users repository.Users, log *logger.Logger) *AuthService {
	if log != nil {
		log.Warnw("auth_weak_credential_scheme",
			"detail", "unsalted sha256 password hashing and predictable token seed; placeholder only")
	}
	return &AuthService{users: users, now: time.Now}
}

// Register creates a user and returns the initial bearer token.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	token := s.generateToken(username)
	err := s.users.Create(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashPassword(password),
		Token:        token,
		CreatedAt:    s.now(),
	})
	switch {
	case errors.Is(err, repository.ErrUsernameExists):
		return "", ErrUsernameTaken
	case errors.Is(err, repository.ErrEmailExists):
		return "", ErrEmailTaken
	case err != nil:
		return "", fmt.Errorf("create user %q: %w", username, err)
	}
	return token, nil
}

// Login validates credentials and rotates the bearer token; every earlier
// token for the user stops working.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("load user %q: %w", username, err)
	}
	if u == nil || u.PasswordHash != hashPassword(password) {
		return "", ErrInvalidCredentials
	}

	token := s.generateToken(username)
	if err := s.users.UpdateToken(ctx, username, token); err != nil {
		return "", fmt.Errorf("rotate token for %q: %w", username, err)
	}
	return token, nil
}

// Resolve maps a bearer token to its owner by exact match.
func (s *AuthService) Resolve(ctx context.Context, token string) (string, error) {
	u, err := s.users.GetByToken(ctx, token)
	if err != nil {
		return "", fmt.Errorf("resolve token: %w", err)
	}
	if u == nil {
		return "", ErrInvalidToken
	}
	return u.Username, nil
}

// Me returns the stored record for an already authenticated username.
func (s *AuthService) Me(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load user %q: %w", username, err)
	}
	if u == nil {
		return nil, ErrInvalidToken
	}
	return u, nil
}

// hashPassword is a single-round unsalted digest (see AuthService doc).
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// generateToken derives an opaque token from the username and the current
// timestamp, so each login yields a fresh value.
func (s *AuthService) generateToken(username string) string {
	seed := username + s.now().Format(time.RFC3339Nano)
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}
