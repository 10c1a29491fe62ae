package models

import "time"

// Favorite is a user-specific saved reference to a player.
type Favorite struct {
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	AddedAt    time.Time `json:"added_at"`
}
