package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transfermarkt_gateway/internal/models"
	"transfermarkt_gateway/internal/repository"
)

// ErrDuplicateFavorite means the user already saved this player.
var ErrDuplicateFavorite = errors.New("player already in favorites")

// FavoritesService manages the per-user saved players list.
type FavoritesService struct {
	favorites repository.Favorites
	now       func() time.Time
}

func NewFavoritesService(favorites repository.Favorites) *FavoritesService {
	return &FavoritesService{favorites: favorites, now: time.Now}
}

// Add saves a player for the user, stamping the added-at time.
func (s *FavoritesService) Add(ctx context.Context, username, playerID, playerName string) error {
	err := s.favorites.Add(ctx, username, models.Favorite{
		PlayerID:   playerID,
		PlayerName: playerName,
		AddedAt:    s.now(),
	})
	if errors.Is(err, repository.ErrFavoriteExists) {
		return ErrDuplicateFavorite
	}
	if err != nil {
		return fmt.Errorf("add favorite %q for %q: %w", playerID, username, err)
	}
	return nil
}

// List returns the user's favorites in the order they were added.
func (s *FavoritesService) List(ctx context.Context, username string) ([]models.Favorite, error) {
	list, err := s.favorites.List(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list favorites for %q: %w", username, err)
	}
	return list, nil
}

// Remove deletes the player from the user's favorites. Removing a player
// that was never saved succeeds as a no-op.
func (s *FavoritesService) Remove(ctx context.Context, username, playerID string) error {
	if _, err := s.favorites.Remove(ctx, username, playerID); err != nil {
		return fmt.Errorf("remove favorite %q for %q: %w", playerID, username, err)
	}
	return nil
}
