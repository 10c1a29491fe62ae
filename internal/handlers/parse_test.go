package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"transfermarkt_gateway/internal/models"
	"transfermarkt_gateway/internal/service"
)

func TestParseCommandHandler(t *testing.T) {
	intent := &mockIntent{intent: models.Intent{
		Action:     models.ActionSearchPlayer,
		PlayerName: "Messi",
	}}
	r := newTestRouter(&service.Service{Intent: intent}, &mockForwarder{})

	w := postJSON(r, "/api/parse-command", `{"command":"show messi stats"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if intent.lastCommand != "show messi stats" {
		t.Fatalf("command not forwarded, got %q", intent.lastCommand)
	}

	var got models.Intent
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode intent: %v", err)
	}
	if got.Action != models.ActionSearchPlayer || got.PlayerName != "Messi" {
		t.Fatalf("unexpected intent: %+v", got)
	}

	// missing command field → 400
	w = postJSON(r, "/api/parse-command", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing command, got %d", w.Code)
	}
}
