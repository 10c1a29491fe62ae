package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"transfermarkt_gateway/internal/models"
)

// userRecord is the on-disk shape of one credential entry, keyed by
// username in the enclosing document.
type userRecord struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Token        string    `json:"token"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserJSON stores all users in a single JSON document on disk. Every
// mutation is a whole-document read-modify-write held under mu, so
// concurrent in-process writers cannot drop each other's updates. A
// token→username index gives O(1) bearer resolution instead of a scan.
type UserJSON struct {
	path    string
	mu      sync.Mutex
	byToken map[string]string
}

var _ Users = (*UserJSON)(nil)

// NewUserJSON opens (creating if absent) the users document at path and
// rebuilds the token index from it.
func NewUserJSON(path string) (*UserJSON, error) {
	r := &UserJSON{path: path, byToken: make(map[string]string)}
	users, err := r.read()
	if err != nil {
		return nil, err
	}
	if users == nil {
		if err := r.write(map[string]userRecord{}); err != nil {
			return nil, err
		}
		return r, nil
	}
	for username, rec := range users {
		if rec.Token != "" {
			r.byToken[rec.Token] = username
		}
	}
	return r, nil
}

// read loads the whole document. Returns nil (not an error) when the file
// does not exist yet.
func (r *UserJSON) read() (map[string]userRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read users file %q: %w", r.path, err)
	}
	users := make(map[string]userRecord)
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode users file %q: %w", r.path, err)
	}
	return users, nil
}

func (r *UserJSON) write(users map[string]userRecord) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users file: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write users file %q: %w", r.path, err)
	}
	return nil
}

// Create inserts a new user. Username and email must both be unique.
func (r *UserJSON) Create(ctx context.Context, u models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.read()
	if err != nil {
		return err
	}
	if users == nil {
		users = make(map[string]userRecord)
	}
	if _, ok := users[u.Username]; ok {
		return ErrUsernameExists
	}
	for _, rec := range users {
		if rec.Email == u.Email {
			return ErrEmailExists
		}
	}
	users[u.Username] = userRecord{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Token:        u.Token,
		CreatedAt:    u.CreatedAt,
	}
	if err := r.write(users); err != nil {
		return err
	}
	r.byToken[u.Token] = u.Username
	return nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserJSON) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.read()
	if err != nil {
		return nil, err
	}
	rec, ok := users[username]
	if !ok {
		return nil, nil
	}
	return recordToUser(username, rec), nil
}

// GetByToken resolves a bearer token via the in-memory index. Returns
// (nil, nil) if no user currently holds the token.
func (r *UserJSON) GetByToken(ctx context.Context, token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	username, ok := r.byToken[token]
	if !ok {
		return nil, nil
	}
	users, err := r.read()
	if err != nil {
		return nil, err
	}
	rec, ok := users[username]
	if !ok || rec.Token != token {
		// Stale index entry (token rotated since).
		delete(r.byToken, token)
		return nil, nil
	}
	return recordToUser(username, rec), nil
}

// UpdateToken replaces the user's bearer token, invalidating the old one.
func (r *UserJSON) UpdateToken(ctx context.Context, username, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.read()
	if err != nil {
		return err
	}
	rec, ok := users[username]
	if !ok {
		return fmt.Errorf("update token: user %q not found", username)
	}
	delete(r.byToken, rec.Token)
	rec.Token = token
	users[username] = rec
	if err := r.write(users); err != nil {
		return err
	}
	r.byToken[token] = username
	return nil
}

func recordToUser(username string, rec userRecord) *models.User {
	return &models.User{
		Username:     username,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		Token:        rec.Token,
		CreatedAt:    rec.CreatedAt,
	}
}
