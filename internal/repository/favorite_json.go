package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"transfermarkt_gateway/internal/models"
)

// FavoriteJSON stores every user's favorites in one JSON document, keyed by
// username. Same whole-document read-modify-write discipline as UserJSON.
type FavoriteJSON struct {
	path string
	mu   sync.Mutex
}

var _ Favorites = (*FavoriteJSON)(nil)

// NewFavoriteJSON opens (creating if absent) the favorites document at path.
func NewFavoriteJSON(path string) (*FavoriteJSON, error) {
	r := &FavoriteJSON{path: path}
	favorites, err := r.read()
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		if err := r.write(map[string][]models.Favorite{}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *FavoriteJSON) read() (map[string][]models.Favorite, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read favorites file %q: %w", r.path, err)
	}
	favorites := make(map[string][]models.Favorite)
	if err := json.Unmarshal(data, &favorites); err != nil {
		return nil, fmt.Errorf("decode favorites file %q: %w", r.path, err)
	}
	return favorites, nil
}

func (r *FavoriteJSON) write(favorites map[string][]models.Favorite) error {
	data, err := json.MarshalIndent(favorites, "", "  ")
	if err != nil {
		return fmt.Errorf("encode favorites file: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write favorites file %q: %w", r.path, err)
	}
	return nil
}

// Add appends a favorite for the user. A (username, player id) pair may
// appear at most once.
func (r *FavoriteJSON) Add(ctx context.Context, username string, f models.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	favorites, err := r.read()
	if err != nil {
		return err
	}
	if favorites == nil {
		favorites = make(map[string][]models.Favorite)
	}
	for _, existing := range favorites[username] {
		if existing.PlayerID == f.PlayerID {
			return ErrFavoriteExists
		}
	}
	favorites[username] = append(favorites[username], f)
	return r.write(favorites)
}

// List returns the user's favorites in insertion order.
func (r *FavoriteJSON) List(ctx context.Context, username string) ([]models.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	favorites, err := r.read()
	if err != nil {
		return nil, err
	}
	// Copy so callers cannot alias the decoded slice across operations.
	out := make([]models.Favorite, len(favorites[username]))
	copy(out, favorites[username])
	return out, nil
}

// Remove deletes every entry matching playerID and reports how many were
// removed. Removing a missing favorite is not an error.
func (r *FavoriteJSON) Remove(ctx context.Context, username, playerID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	favorites, err := r.read()
	if err != nil {
		return 0, err
	}
	if favorites == nil {
		return 0, nil
	}
	kept := favorites[username][:0]
	removed := 0
	for _, f := range favorites[username] {
		if f.PlayerID == playerID {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	if removed == 0 {
		return 0, nil
	}
	favorites[username] = kept
	if err := r.write(favorites); err != nil {
		return 0, err
	}
	return removed, nil
}
