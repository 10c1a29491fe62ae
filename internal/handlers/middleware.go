package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context key under which the authenticated username is stored.
const usernameKey = "username"

// bearerAuthMiddleware resolves the opaque bearer token to a username and
// stores it in the Gin context.
func (h *Handler) bearerAuthMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	username, err := h.services.Resolve(c.Request.Context(), parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid token",
		})
		return
	}

	c.Set(usernameKey, username)
	c.Next()
}

// currentUsername reads the username stored by bearerAuthMiddleware.
func currentUsername(c *gin.Context) string {
	return c.GetString(usernameKey)
}

// corsMiddleware allows the browser frontend to call from any origin, as
// the deployed gateway does.
func corsMiddleware(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// requestLogger tags each request with an id and logs the outcome.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	id := uuid.NewString()
	c.Set("request_id", id)
	c.Next()
	if h.log != nil {
		h.log.Infow("http_request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
