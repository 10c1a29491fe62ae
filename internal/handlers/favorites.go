package handlers

import (
	"errors"
	"net/http"

	"transfermarkt_gateway/internal/service"

	"github.com/gin-gonic/gin"
)

type favoriteRequest struct {
	PlayerID   string `json:"player_id" binding:"required"`
	PlayerName string `json:"player_name" binding:"required"`
}

// @Summary      Add a player to favorites
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        body  body      favoriteRequest  true  "Player reference"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string  "already favorited"
// @Failure      401   {object}  map[string]string
// @Router       /api/favorites [post]
// @Security     BearerAuth
func (h *Handler) addFavorite(c *gin.Context) {
	var input favoriteRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	username := currentUsername(c)
	err := h.services.Favorites.Add(c.Request.Context(), username, input.PlayerID, input.PlayerName)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateFavorite) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errAddFavorite, "favorite_add_failed", err,
			"username", username, "player_id", input.PlayerID)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgFavoriteAdded})
}

// @Summary      List favorite players
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "favorites"
// @Failure      401  {object}  map[string]string
// @Router       /api/favorites [get]
// @Security     BearerAuth
func (h *Handler) listFavorites(c *gin.Context) {
	username := currentUsername(c)
	favorites, err := h.services.Favorites.List(c.Request.Context(), username)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListFavorites, "favorite_list_failed", err,
			"username", username)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// @Summary      Remove a player from favorites
// @Description  Removing a player that was never favorited succeeds as a no-op.
// @Tags         favorites
// @Produce      json
// @Param        player_id  path  string  true  "Player id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/favorites/{player_id} [delete]
// @Security     BearerAuth
func (h *Handler) removeFavorite(c *gin.Context) {
	username := currentUsername(c)
	playerID := c.Param("player_id")
	if err := h.services.Favorites.Remove(c.Request.Context(), username, playerID); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRemoveFavorite, "favorite_remove_failed", err,
			"username", username, "player_id", playerID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgFavoriteRemoved})
}
