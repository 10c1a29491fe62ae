package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"transfermarkt_gateway/internal/models"
)

func newFavoriteJSONRepo(t *testing.T) *FavoriteJSON {
	t.Helper()
	repo, err := NewFavoriteJSON(filepath.Join(t.TempDir(), "favorites.json"))
	if err != nil {
		t.Fatalf("NewFavoriteJSON: %v", err)
	}
	return repo
}

func fav(id, name string) models.Favorite {
	return models.Favorite{PlayerID: id, PlayerName: name, AddedAt: time.Now().UTC()}
}

func TestFavoriteJSON_AddListOrder(t *testing.T) {
	repo := newFavoriteJSONRepo(t)
	ctx := context.Background()

	for _, f := range []models.Favorite{fav("1", "Messi"), fav("2", "Ronaldo"), fav("3", "Mbappé")} {
		if err := repo.Add(ctx, "alice", f); err != nil {
			t.Fatalf("add %s: %v", f.PlayerID, err)
		}
	}

	list, err := repo.List(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Messi", "Ronaldo", "Mbappé"}
	if len(list) != len(want) {
		t.Fatalf("len=%d, want %d", len(list), len(want))
	}
	for i, name := range want {
		if list[i].PlayerName != name {
			t.Fatalf("list[%d]=%q, want %q", i, list[i].PlayerName, name)
		}
	}

	// other users see nothing
	other, err := repo.List(ctx, "bob")
	if err != nil || len(other) != 0 {
		t.Fatalf("expected empty list for bob, got %v, %v", other, err)
	}
}

func TestFavoriteJSON_DuplicateAdd(t *testing.T) {
	repo := newFavoriteJSONRepo(t)
	ctx := context.Background()

	if err := repo.Add(ctx, "alice", fav("1", "Messi")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Add(ctx, "alice", fav("1", "Messi")); !errors.Is(err, ErrFavoriteExists) {
		t.Fatalf("expected ErrFavoriteExists, got %v", err)
	}

	list, err := repo.List(ctx, "alice")
	if err != nil || len(list) != 1 {
		t.Fatalf("list after duplicate add: %v, %v", list, err)
	}

	// the same player is fine for a different user
	if err := repo.Add(ctx, "bob", fav("1", "Messi")); err != nil {
		t.Fatalf("add for bob: %v", err)
	}
}

func TestFavoriteJSON_Remove(t *testing.T) {
	repo := newFavoriteJSONRepo(t)
	ctx := context.Background()

	if err := repo.Add(ctx, "alice", fav("1", "Messi")); err != nil {
		t.Fatalf("add: %v", err)
	}

	removed, err := repo.Remove(ctx, "alice", "1")
	if err != nil || removed != 1 {
		t.Fatalf("remove: removed=%d, err=%v", removed, err)
	}

	// removing again is a no-op, not an error
	removed, err = repo.Remove(ctx, "alice", "1")
	if err != nil || removed != 0 {
		t.Fatalf("second remove: removed=%d, err=%v", removed, err)
	}

	// unknown user is also a no-op
	removed, err = repo.Remove(ctx, "ghost", "1")
	if err != nil || removed != 0 {
		t.Fatalf("remove for unknown user: removed=%d, err=%v", removed, err)
	}
}

// Concurrent in-process adds must all land: the store serializes its
// read-modify-write cycle, so writers cannot drop each other's entries.
func TestFavoriteJSON_ConcurrentAdds(t *testing.T) {
	repo := newFavoriteJSONRepo(t)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("%d", i)
			errs <- repo.Add(ctx, "alice", fav(id, "Player "+id))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent add: %v", err)
		}
	}

	list, err := repo.List(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != writers {
		t.Fatalf("lost updates: got %d favorites, want %d", len(list), writers)
	}
}
