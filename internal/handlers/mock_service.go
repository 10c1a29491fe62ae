package handlers

import (
	"context"
	"net/url"

	"transfermarkt_gateway/internal/models"
	"transfermarkt_gateway/internal/service"
	"transfermarkt_gateway/internal/upstream"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
	resolveUser   string
	resolveErr    error
	meUser        *models.User
	meErr         error

	lastRegisterUsername string
	lastRegisterEmail    string
	lastLoginUsername    string
	lastResolveToken     string
}

func (m *mockAuth) Register(ctx context.Context, username, email, password string) (string, error) {
	m.lastRegisterUsername = username
	m.lastRegisterEmail = email
	return m.registerToken, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (string, error) {
	m.lastLoginUsername = username
	return m.loginToken, m.loginErr
}

func (m *mockAuth) Resolve(ctx context.Context, token string) (string, error) {
	m.lastResolveToken = token
	return m.resolveUser, m.resolveErr
}

func (m *mockAuth) Me(ctx context.Context, username string) (*models.User, error) {
	return m.meUser, m.meErr
}

type mockFavorites struct {
	addErr  error
	list    []models.Favorite
	listErr error
	remErr  error

	lastAddUsername   string
	lastAddPlayerID   string
	lastAddPlayerName string
	lastRemovePlayer  string
	removeCalls       int
}

func (m *mockFavorites) Add(ctx context.Context, username, playerID, playerName string) error {
	m.lastAddUsername = username
	m.lastAddPlayerID = playerID
	m.lastAddPlayerName = playerName
	return m.addErr
}

func (m *mockFavorites) List(ctx context.Context, username string) ([]models.Favorite, error) {
	return m.list, m.listErr
}

func (m *mockFavorites) Remove(ctx context.Context, username, playerID string) error {
	m.removeCalls++
	m.lastRemovePlayer = playerID
	return m.remErr
}

type mockIntent struct {
	intent      models.Intent
	lastCommand string
}

func (m *mockIntent) Parse(ctx context.Context, command string) models.Intent {
	m.lastCommand = command
	return m.intent
}

// ---- Upstream Mock ----

type mockForwarder struct {
	result *upstream.Result
	err    error

	lastPath  string
	lastQuery url.Values
}

func (m *mockForwarder) Get(ctx context.Context, path string, query url.Values) (*upstream.Result, error) {
	m.lastPath = path
	m.lastQuery = query
	return m.result, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, proxy upstream.Forwarder) *gin.Engine {
	h := NewHandler(s, proxy, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
