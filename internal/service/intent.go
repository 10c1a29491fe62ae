package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"transfermarkt_gateway/internal/logger"
	"transfermarkt_gateway/internal/models"
)

const intentSystemPrompt = "You are a helpful assistant that extracts information from " +
	"football statistics requests. Always return valid JSON only."

const intentPromptTemplate = `Extract information from this football statistics request: "%s"

Return a JSON object with:
- "action": one of "search_player", "compare_players", "club_achievements", "show_favorites" (required)
- "playerName": player name if mentioned (optional)
- "playerName2": second player name for comparison (optional)
- "clubName": club name if mentioned (optional)

Examples:
- "show me ousmane dembele stats for psg" -> {"action": "search_player", "playerName": "Ousmane Dembélé", "clubName": "PSG"}
- "compare messi and ronaldo" -> {"action": "compare_players", "playerName": "Lionel Messi", "playerName2": "Cristiano Ronaldo"}
- "show psg achievements" -> {"action": "club_achievements", "clubName": "PSG"}
- "show my favorites" -> {"action": "show_favorites"}

Only return valid JSON, no other text.`

// IntentService extracts a structured intent from a voice command: the
// model first, the deterministic rule cascade when the model path fails in
// any way.
type IntentService struct {
	llm CompletionClient
	log *logger.Logger
}

func NewIntentService(llm CompletionClient, log *logger.Logger) *IntentService {
	return &IntentService{llm: llm, log: log}
}

// Parse never surfaces an error; a caller always gets some intent.
func (s *IntentService) Parse(ctx context.Context, command string) models.Intent {
	if s.llm != nil {
		intent, err := s.parseWithModel(ctx, command)
		if err == nil {
			return intent
		}
		if s.log != nil {
			s.log.Infow("intent_model_fallback", "err", err)
		}
	}
	return fallbackExtract(command)
}

func (s *IntentService) parseWithModel(ctx context.Context, command string) (models.Intent, error) {
	content, err := s.llm.Complete(ctx, intentSystemPrompt, fmt.Sprintf(intentPromptTemplate, command))
	if err != nil {
		return models.Intent{}, err
	}
	return decodeIntent(content)
}

// decodeIntent strips a Markdown code fence (with optional "json" language
// tag) and decodes the remainder.
func decodeIntent(content string) (models.Intent, error) {
	content = stripCodeFence(content)
	var intent models.Intent
	if err := json.Unmarshal([]byte(content), &intent); err != nil {
		return models.Intent{}, fmt.Errorf("decode intent JSON: %w", err)
	}
	if intent.Action == "" {
		return models.Intent{}, errors.New("intent JSON missing action")
	}
	return intent, nil
}

func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	parts := strings.Split(content, "```")
	if len(parts) < 2 {
		return content
	}
	inner := parts[1]
	inner = strings.TrimPrefix(inner, "json")
	return strings.TrimSpace(inner)
}
