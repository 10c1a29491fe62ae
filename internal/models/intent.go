package models

// Intent actions produced from a voice command.
const (
	ActionSearchPlayer     = "search_player"
	ActionComparePlayers   = "compare_players"
	ActionClubAchievements = "club_achievements"
	ActionShowFavorites    = "show_favorites"
)

// Intent is the structured result of parsing a free-text voice command.
type Intent struct {
	Action      string `json:"action"`
	PlayerName  string `json:"playerName,omitempty"`
	PlayerName2 string `json:"playerName2,omitempty"`
	ClubName    string `json:"clubName,omitempty"`
}
