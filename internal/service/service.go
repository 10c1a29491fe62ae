package service

import (
	"context"

	"transfermarkt_gateway/internal/logger"
	"transfermarkt_gateway/internal/models"
	"transfermarkt_gateway/internal/repository"
)

// Authorization issues and resolves opaque bearer tokens.
type Authorization interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Me(ctx context.Context, username string) (*models.User, error)
}

// Favorites manages per-user saved players.
type Favorites interface {
	Add(ctx context.Context, username, playerID, playerName string) error
	List(ctx context.Context, username string) ([]models.Favorite, error)
	Remove(ctx context.Context, username, playerID string) error
}

// Intent turns a free-text voice command into a structured intent. It never
// fails: when the model path is unavailable the rule cascade answers.
type Intent interface {
	Parse(ctx context.Context, command string) models.Intent
}

// CompletionClient is the outbound LLM dependency of the intent service.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Favorites
	Intent
}

// NewService wires the repository layer and outbound clients into concrete
// services.
func NewService(repos *repository.Repository, llm CompletionClient, log *logger.Logger) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, log),
		Favorites:     NewFavoritesService(repos.Favorites),
		Intent:        NewIntentService(llm, log),
	}
}
