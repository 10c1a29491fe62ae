package service

import (
	"testing"

	"transfermarkt_gateway/internal/models"
)

func TestFallbackExtract(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    models.Intent
	}{
		{
			name:    "comparison with and",
			command: "compare messi and ronaldo",
			want: models.Intent{
				Action:      models.ActionComparePlayers,
				PlayerName:  "Messi",
				PlayerName2: "Ronaldo",
			},
		},
		{
			name:    "comparison strips stats noise",
			command: "compare messi stats and ronaldo stats",
			want: models.Intent{
				Action:      models.ActionComparePlayers,
				PlayerName:  "Messi",
				PlayerName2: "Ronaldo",
			},
		},
		{
			// The comparison rule declines without " and " to split on;
			// the default rule then sees the unmodified command.
			name:    "vs without and falls through to player search",
			command: "messi vs ronaldo",
			want: models.Intent{
				Action:     models.ActionSearchPlayer,
				PlayerName: "Messi Vs Ronaldo",
			},
		},
		{
			name:    "favorites",
			command: "show my favorites",
			want:    models.Intent{Action: models.ActionShowFavorites},
		},
		{
			name:    "favourites british spelling",
			command: "open my favourites",
			want:    models.Intent{Action: models.ActionShowFavorites},
		},
		{
			name:    "club achievements strips trailing noise",
			command: "show psg achievements",
			want: models.Intent{
				Action:   models.ActionClubAchievements,
				ClubName: "Psg",
			},
		},
		{
			name:    "club info",
			command: "barcelona info",
			want: models.Intent{
				Action:   models.ActionClubAchievements,
				ClubName: "Barcelona",
			},
		},
		{
			name:    "multi word club is title cased",
			command: "real madrid achievements",
			want: models.Intent{
				Action:   models.ActionClubAchievements,
				ClubName: "Real Madrid",
			},
		},
		{
			name:    "player stats",
			command: "messi stats",
			want: models.Intent{
				Action:     models.ActionSearchPlayer,
				PlayerName: "Messi",
			},
		},
		{
			name:    "player stats with club after for",
			command: "mbappe stats for monaco",
			want: models.Intent{
				Action:     models.ActionSearchPlayer,
				PlayerName: "Mbappe",
				ClubName:   "MONACO",
			},
		},
		{
			name:    "show me prefix stripped before show",
			command: "show me haaland statistics",
			want: models.Intent{
				Action:     models.ActionSearchPlayer,
				PlayerName: "Haaland",
			},
		},
		{
			name:    "default player search",
			command: "find ronaldo",
			want: models.Intent{
				Action:     models.ActionSearchPlayer,
				PlayerName: "Ronaldo",
			},
		},
		{
			name:    "uppercase input is normalised",
			command: "FIND RONALDO",
			want: models.Intent{
				Action:     models.ActionSearchPlayer,
				PlayerName: "Ronaldo",
			},
		},
		{
			name:    "bare noise falls back to the raw command",
			command: "show",
			want: models.Intent{
				Action:     models.ActionSearchPlayer,
				PlayerName: "show",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fallbackExtract(tt.command)
			if got != tt.want {
				t.Errorf("fallbackExtract(%q) = %+v, want %+v", tt.command, got, tt.want)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"psg", "Psg"},
		{"real madrid", "Real Madrid"},
		{"LIONEL MESSI", "Lionel Messi"},
		{"  padded  name ", "Padded Name"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
