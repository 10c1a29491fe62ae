package handlers

import (
	"transfermarkt_gateway/internal/logger"
	"transfermarkt_gateway/internal/service"
	"transfermarkt_gateway/internal/upstream"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services, the upstream forwarder and
// logging.
type Handler struct {
	services *service.Service
	proxy    upstream.Forwarder
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, proxy upstream.Forwarder, log *logger.Logger) *Handler {
	return &Handler{services: services, proxy: proxy, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), corsMiddleware, h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Static page and liveness probe
	router.GET("/", h.indexPage)
	router.GET("/health", h.health)
	router.StaticFS("/static", gin.Dir(webDir, false))

	api := router.Group("/api")
	{
		api.GET("/test", h.testRoute)

		h.registerAuthRoutes(api)
		h.registerFavoriteRoutes(api)

		// Voice command parsing and the statistics proxy are public,
		// matching the deployed surface.
		api.POST("/parse-command", h.parseCommand)
		h.registerProxyRoutes(api)
	}

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/me", h.bearerAuthMiddleware, h.me)
	}
}

func (h *Handler) registerFavoriteRoutes(api *gin.RouterGroup) {
	favorites := api.Group("/favorites", h.bearerAuthMiddleware)
	{
		favorites.POST("", h.addFavorite)
		favorites.GET("", h.listFavorites)
		favorites.DELETE("/:player_id", h.removeFavorite)
	}
}

func (h *Handler) registerProxyRoutes(api *gin.RouterGroup) {
	players := api.Group("/players")
	{
		players.GET("/search/:player_name", h.playerSearch)
		players.GET("/:player_id/stats", h.playerStats)
		players.GET("/:player_id/profile", h.playerProfile)
		players.GET("/:player_id/achievements", h.playerAchievements)
		players.GET("/:player_id/transfers", h.playerTransfers)
		players.GET("/:player_id/injuries", h.playerInjuries)
		players.GET("/:player_id/market_value", h.playerMarketValue)
		players.GET("/:player_id/jersey_numbers", h.playerJerseyNumbers)
	}
	clubs := api.Group("/clubs")
	{
		clubs.GET("/search/:club_name", h.clubSearch)
		clubs.GET("/:club_id/profile", h.clubProfile)
		clubs.GET("/:club_id/players", h.clubPlayers)
	}
	api.GET("/competitions/search/:competition_name", h.competitionSearch)
}
