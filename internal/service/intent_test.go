package service

import (
	"context"
	"errors"
	"testing"

	"transfermarkt_gateway/internal/models"
)

// stubCompletion returns a canned completion or error.
type stubCompletion struct {
	content string
	err     error
}

func (s *stubCompletion) Complete(context.Context, string, string) (string, error) {
	return s.content, s.err
}

func TestIntentService_ParseModelResponse(t *testing.T) {
	llm := &stubCompletion{content: `{"action": "search_player", "playerName": "Lionel Messi"}`}
	svc := NewIntentService(llm, nil)

	got := svc.Parse(context.Background(), "show me messi")
	want := models.Intent{Action: models.ActionSearchPlayer, PlayerName: "Lionel Messi"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestIntentService_ParseStripsCodeFence(t *testing.T) {
	llm := &stubCompletion{content: "```json\n{\"action\": \"show_favorites\"}\n```"}
	svc := NewIntentService(llm, nil)

	got := svc.Parse(context.Background(), "show my favorites")
	if got.Action != models.ActionShowFavorites {
		t.Fatalf("got %+v, want show_favorites", got)
	}
}

func TestIntentService_FallbackOnModelError(t *testing.T) {
	llm := &stubCompletion{err: errors.New("upstream unavailable")}
	svc := NewIntentService(llm, nil)

	got := svc.Parse(context.Background(), "compare messi and ronaldo")
	want := models.Intent{
		Action:      models.ActionComparePlayers,
		PlayerName:  "Messi",
		PlayerName2: "Ronaldo",
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestIntentService_FallbackOnBadJSON(t *testing.T) {
	llm := &stubCompletion{content: "Sure! Here is the intent you asked for."}
	svc := NewIntentService(llm, nil)

	got := svc.Parse(context.Background(), "find ronaldo")
	want := models.Intent{Action: models.ActionSearchPlayer, PlayerName: "Ronaldo"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestIntentService_FallbackOnMissingAction(t *testing.T) {
	llm := &stubCompletion{content: `{"playerName": "Messi"}`}
	svc := NewIntentService(llm, nil)

	got := svc.Parse(context.Background(), "messi stats")
	want := models.Intent{Action: models.ActionSearchPlayer, PlayerName: "Messi"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestIntentService_NoModelConfigured(t *testing.T) {
	svc := NewIntentService(nil, nil)

	got := svc.Parse(context.Background(), "show psg achievements")
	want := models.Intent{Action: models.ActionClubAchievements, ClubName: "Psg"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"action":"x"}`, `{"action":"x"}`},
		{"fenced", "```\n{\"action\":\"x\"}\n```", `{"action":"x"}`},
		{"fenced with language tag", "```json\n{\"action\":\"x\"}\n```", `{"action":"x"}`},
		{"surrounding whitespace", "  ```json\n{}\n```  ", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFence(tt.in); got != tt.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
