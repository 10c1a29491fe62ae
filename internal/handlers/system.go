package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Directory holding the browser frontend (index.html, CSS, JS).
const webDir = "web"

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errRegister        = "failed to register user"
	errLogin           = "failed to log in"
	errLoadUser        = "failed to load user"
	errAddFavorite     = "failed to add favorite"
	errListFavorites   = "failed to list favorites"
	errRemoveFavorite  = "failed to remove favorite"
	errUpstreamFailed  = "failed to reach the statistics API"
	errUpstreamBlocked = "The Transfermarkt API is currently blocking requests (403 Forbidden). " +
		"This may be due to rate limiting or anti-bot protection. " +
		"Try again in a few minutes, or run the Transfermarkt API locally."

	msgFavoriteAdded   = "Player added to favorites"
	msgFavoriteRemoved = "Player removed from favorites"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Route sanity check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/test [get]
func (h *Handler) testRoute(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API routes are working"})
}

// indexPage serves the frontend entry point, with an inline notice when the
// web assets are not deployed alongside the binary.
func (h *Handler) indexPage(c *gin.Context) {
	page := filepath.Join(webDir, "index.html")
	if _, err := os.Stat(page); err != nil {
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte("<h1>Web interface not found. Please ensure web/index.html exists.</h1>"))
		return
	}
	c.File(page)
}
