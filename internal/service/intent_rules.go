package service

import (
	"strings"
	"unicode"

	"transfermarkt_gateway/internal/models"
)

// The fallback extractor is an ordered rule cascade: each rule has a cheap
// predicate and an extractor that may still decline (e.g. a comparison
// phrase without two names), in which case evaluation falls through to the
// next rule. First successful extraction wins.
type fallbackRule struct {
	name    string
	match   func(cmd string) bool
	extract func(cmd string) (models.Intent, bool)
}

var fallbackRules = []fallbackRule{
	{name: "comparison", match: matchComparison, extract: extractComparison},
	{name: "favorites", match: matchFavorites, extract: extractFavorites},
	{name: "club", match: matchClub, extract: extractClub},
	{name: "player_stats", match: matchStats, extract: extractPlayerStats},
	{name: "player_default", match: matchAny, extract: extractPlayerDefault},
}

// Noise-word lists. Prefixes are stripped once each, in order; longer
// phrases come before their prefixes ("show me" before "show").
var (
	comparisonNoise = []string{"stats", "statistics"}

	clubIndicators = []string{
		"club", "fc", "united", "city", "arsenal", "chelsea", "liverpool",
		"manchester", "barcelona", "real madrid", "psg", "bayern", "juventus",
	}
	clubPrefixes = []string{
		"show", "display", "get", "find", "club", "info", "information", "achievements",
	}
	clubSuffixes = []string{"achievements", "info", "information", "club"}

	statsPrefixes = []string{
		"show me", "show", "find", "get", "search for", "stats for", "statistics for", "display",
	}
	statsSuffixes = []string{" stats", " statistics", " stat"}

	defaultPrefixes = []string{"show me", "show", "find", "get", "search for", "display"}
)

// fallbackExtract runs the cascade over the lowercased command. The final
// safety net echoes the raw command as a player search.
func fallbackExtract(command string) models.Intent {
	cmd := strings.ToLower(strings.TrimSpace(command))
	for _, rule := range fallbackRules {
		if !rule.match(cmd) {
			continue
		}
		if intent, ok := rule.extract(cmd); ok {
			return intent
		}
	}
	return models.Intent{Action: models.ActionSearchPlayer, PlayerName: command}
}

func matchAny(string) bool { return true }

func matchComparison(cmd string) bool {
	return strings.Contains(cmd, "compare") ||
		strings.Contains(cmd, " vs ") ||
		strings.Contains(cmd, " versus ")
}

func extractComparison(cmd string) (models.Intent, bool) {
	cleaned := strings.ReplaceAll(cmd, "compare", "")
	cleaned = strings.ReplaceAll(cleaned, "versus", " ")
	cleaned = strings.ReplaceAll(cleaned, " vs ", " ")
	parts := strings.SplitN(cleaned, " and ", 2)
	if len(parts) < 2 {
		return models.Intent{}, false
	}
	player1 := strings.TrimSpace(removeWords(parts[0], comparisonNoise))
	player2 := strings.TrimSpace(removeWords(parts[1], comparisonNoise))
	return models.Intent{
		Action:      models.ActionComparePlayers,
		PlayerName:  titleCase(player1),
		PlayerName2: titleCase(player2),
	}, true
}

func matchFavorites(cmd string) bool {
	return strings.Contains(cmd, "favorite") || strings.Contains(cmd, "favourite")
}

func extractFavorites(string) (models.Intent, bool) {
	return models.Intent{Action: models.ActionShowFavorites}, true
}

func matchClub(cmd string) bool {
	for _, indicator := range clubIndicators {
		if strings.Contains(cmd, indicator) {
			return true
		}
	}
	return false
}

func extractClub(cmd string) (models.Intent, bool) {
	name := trimPrefixWords(cmd, clubPrefixes)
	name = strings.TrimSpace(removeWords(name, comparisonNoise))
	name = trimSuffixWords(name, clubSuffixes)
	if name == "" {
		return models.Intent{}, false
	}
	return models.Intent{
		Action:   models.ActionClubAchievements,
		ClubName: titleCase(name),
	}, true
}

func matchStats(cmd string) bool {
	// "stat" also covers "stats" and "statistics".
	return strings.Contains(cmd, "stat")
}

func extractPlayerStats(cmd string) (models.Intent, bool) {
	playerPart := cmd
	clubPart := ""
	if strings.Contains(playerPart, " for ") {
		parts := strings.SplitN(playerPart, " for ", 2)
		playerPart = parts[0]
		clubPart = strings.TrimSpace(parts[1])
	}
	playerPart = trimPrefixWords(playerPart, statsPrefixes)
	for _, suffix := range statsSuffixes {
		if strings.HasSuffix(playerPart, suffix) {
			playerPart = strings.TrimSpace(strings.TrimSuffix(playerPart, suffix))
		}
	}
	if playerPart == "" {
		return models.Intent{}, false
	}
	return models.Intent{
		Action:     models.ActionSearchPlayer,
		PlayerName: titleCase(playerPart),
		ClubName:   strings.ToUpper(clubPart),
	}, true
}

func extractPlayerDefault(cmd string) (models.Intent, bool) {
	cleaned := trimPrefixWords(cmd, defaultPrefixes)
	if cleaned == "" {
		return models.Intent{}, false
	}
	return models.Intent{
		Action:     models.ActionSearchPlayer,
		PlayerName: titleCase(cleaned),
	}, true
}

// trimPrefixWords strips each prefix at most once, in list order.
func trimPrefixWords(s string, prefixes []string) string {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
		}
	}
	return s
}

// trimSuffixWords strips each trailing noise word at most once, in list order.
func trimSuffixWords(s string, suffixes []string) string {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, " "+suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, " "+suffix))
		}
	}
	return s
}

func removeWords(s string, words []string) string {
	for _, w := range words {
		s = strings.ReplaceAll(s, w, "")
	}
	return s
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest ("real madrid" → "Real Madrid", "psg" → "Psg").
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
