package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transfermarkt_gateway/internal/models"
)

// UserSQLite is the credential store over database/sql (modernc sqlite).
type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of the Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	countUserByUsernameSQL  = `SELECT COUNT(1) FROM users WHERE username = ?`
	countUserByEmailSQL     = `SELECT COUNT(1) FROM users WHERE email = ?`
	insertUserSQL           = `INSERT INTO users (username, email, password_hash, token, created_at) VALUES (?, ?, ?, ?, ?)`
	selectUserByUsernameSQL = `SELECT username, email, password_hash, token, created_at FROM users WHERE username = ?`
	selectUserByTokenSQL    = `SELECT username, email, password_hash, token, created_at FROM users WHERE token = ?`
	updateUserTokenSQL      = `UPDATE users SET token = ? WHERE username = ?`
)

// Create inserts a new user after checking both uniqueness constraints, so
// duplicates map to the store's sentinel errors rather than driver errors.
func (r *UserSQLite) Create(ctx context.Context, u models.User) error {
	var n int
	if err := r.db.QueryRowContext(ctx, countUserByUsernameSQL, u.Username).Scan(&n); err != nil {
		return fmt.Errorf("check username %q: %w", u.Username, err)
	}
	if n > 0 {
		return ErrUsernameExists
	}
	if err := r.db.QueryRowContext(ctx, countUserByEmailSQL, u.Email).Scan(&n); err != nil {
		return fmt.Errorf("check email %q: %w", u.Email, err)
	}
	if n > 0 {
		return ErrEmailExists
	}
	if _, err := r.db.ExecContext(ctx, insertUserSQL,
		u.Username, u.Email, u.PasswordHash, u.Token, u.CreatedAt); err != nil {
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username),
		fmt.Sprintf("select user %q", username))
}

// GetByToken resolves a bearer token via the indexed token column.
// Returns (nil, nil) if no user currently holds the token.
func (r *UserSQLite) GetByToken(ctx context.Context, token string) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByTokenSQL, token), "select user by token")
}

// UpdateToken replaces the user's bearer token, invalidating the old one.
func (r *UserSQLite) UpdateToken(ctx context.Context, username, token string) error {
	res, err := r.db.ExecContext(ctx, updateUserTokenSQL, token, username)
	if err != nil {
		return fmt.Errorf("update token for %q: %w", username, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for %q: %w", username, err)
	}
	if affected == 0 {
		return fmt.Errorf("update token: user %q not found", username)
	}
	return nil
}

func (r *UserSQLite) scanOne(row *sql.Row, opDesc string) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.Username, &u.Email, &u.PasswordHash, &u.Token, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", opDesc, err)
	}
	return &u, nil
}
