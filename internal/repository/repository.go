package repository

import (
	"context"
	"database/sql"
	"errors"

	"transfermarkt_gateway/internal/models"
)

// Duplicate-key errors surfaced by both storage backends.
var (
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already registered")
	ErrFavoriteExists = errors.New("player already in favorites")
)

// Users is the injected credential store. GetByUsername/GetByToken return
// (nil, nil) when no record matches.
type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByToken(ctx context.Context, token string) (*models.User, error)
	UpdateToken(ctx context.Context, username, token string) error
}

// Favorites is the injected per-user favorites store. List preserves
// insertion order; Remove reports how many entries matched.
type Favorites interface {
	Add(ctx context.Context, username string, f models.Favorite) error
	List(ctx context.Context, username string) ([]models.Favorite, error)
	Remove(ctx context.Context, username, playerID string) (int, error)
}

type Repository struct {
	Users     Users
	Favorites Favorites
}

// NewJSONRepository builds the default flat-file backend: one JSON document
// per store, read-modify-write serialized per store.
func NewJSONRepository(usersPath, favoritesPath string) (*Repository, error) {
	users, err := NewUserJSON(usersPath)
	if err != nil {
		return nil, err
	}
	favorites, err := NewFavoriteJSON(favoritesPath)
	if err != nil {
		return nil, err
	}
	return &Repository{Users: users, Favorites: favorites}, nil
}

// NewSQLiteRepository builds the transactional backend over an opened
// SQLite handle (see db.InitDB).
func NewSQLiteRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserSQLite(db),
		Favorites: NewFavoriteSQLite(db),
	}
}
