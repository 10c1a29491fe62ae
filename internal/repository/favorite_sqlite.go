package repository

import (
	"context"
	"database/sql"
	"fmt"

	"transfermarkt_gateway/internal/models"
)

// FavoriteSQLite is the favorites store over database/sql (modernc sqlite).
type FavoriteSQLite struct {
	db *sql.DB
}

func NewFavoriteSQLite(db *sql.DB) *FavoriteSQLite {
	return &FavoriteSQLite{db: db}
}

// Ensure implementation of the Favorites interface at compile time.
var _ Favorites = (*FavoriteSQLite)(nil)

const (
	countFavoriteSQL   = `SELECT COUNT(1) FROM favorites WHERE username = ? AND player_id = ?`
	insertFavoriteSQL  = `INSERT INTO favorites (username, player_id, player_name, added_at) VALUES (?, ?, ?, ?)`
	selectFavoritesSQL = `SELECT player_id, player_name, added_at FROM favorites WHERE username = ? ORDER BY id`
	deleteFavoriteSQL  = `DELETE FROM favorites WHERE username = ? AND player_id = ?`
)

// Add appends a favorite for the user. A (username, player id) pair may
// appear at most once.
func (r *FavoriteSQLite) Add(ctx context.Context, username string, f models.Favorite) error {
	var n int
	if err := r.db.QueryRowContext(ctx, countFavoriteSQL, username, f.PlayerID).Scan(&n); err != nil {
		return fmt.Errorf("check favorite %q/%q: %w", username, f.PlayerID, err)
	}
	if n > 0 {
		return ErrFavoriteExists
	}
	if _, err := r.db.ExecContext(ctx, insertFavoriteSQL,
		username, f.PlayerID, f.PlayerName, f.AddedAt); err != nil {
		return fmt.Errorf("insert favorite %q/%q: %w", username, f.PlayerID, err)
	}
	return nil
}

// List returns the user's favorites in insertion order.
func (r *FavoriteSQLite) List(ctx context.Context, username string) ([]models.Favorite, error) {
	rows, err := r.db.QueryContext(ctx, selectFavoritesSQL, username)
	if err != nil {
		return nil, fmt.Errorf("select favorites for %q: %w", username, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.Favorite, 0)
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.PlayerID, &f.PlayerName, &f.AddedAt); err != nil {
			return nil, fmt.Errorf("scan favorite for %q: %w", username, err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites for %q: %w", username, err)
	}
	return out, nil
}

// Remove deletes every entry matching playerID and reports how many were
// removed. Removing a missing favorite is not an error.
func (r *FavoriteSQLite) Remove(ctx context.Context, username, playerID string) (int, error) {
	res, err := r.db.ExecContext(ctx, deleteFavoriteSQL, username, playerID)
	if err != nil {
		return 0, fmt.Errorf("delete favorite %q/%q: %w", username, playerID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for favorite %q/%q: %w", username, playerID, err)
	}
	return int(affected), nil
}
