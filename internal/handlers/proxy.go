package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

const jsonContentType = "application/json; charset=utf-8"

// forwardUpstream relays one statistics query. A 403 is rewritten into the
// rate-limit explanation; every other upstream status passes through with
// its body; transport failures become a generic 500.
func (h *Handler) forwardUpstream(c *gin.Context, path string, query url.Values) {
	res, err := h.proxy.Get(c.Request.Context(), path, query)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errUpstreamFailed, "upstream_call_failed", err,
			"path", path)
		return
	}
	if res.StatusCode == http.StatusForbidden {
		if h.log != nil {
			h.log.Warnw("upstream_blocked", "path", path)
		}
		c.JSON(http.StatusForbidden, gin.H{"error": errUpstreamBlocked})
		return
	}
	c.Data(res.StatusCode, jsonContentType, res.Body)
}

// pageQuery forwards page_number when the client asked for anything beyond
// the first page, matching what the upstream expects.
func pageQuery(c *gin.Context) url.Values {
	query := url.Values{}
	if page := c.Query("page_number"); page != "" && page != "1" {
		query.Set("page_number", page)
	}
	return query
}

// @Summary      Search players
// @Tags         players
// @Produce      json
// @Param        player_name  path   string  true   "Name to search"
// @Param        page_number  query  int     false  "Result page"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string  "upstream blocking"
// @Router       /api/players/search/{player_name} [get]
func (h *Handler) playerSearch(c *gin.Context) {
	h.forwardUpstream(c, "/players/search/"+url.PathEscape(c.Param("player_name")), pageQuery(c))
}

// @Summary      Player season statistics
// @Tags         players
// @Produce      json
// @Param        player_id  path  string  true  "Player id"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/players/{player_id}/stats [get]
func (h *Handler) playerStats(c *gin.Context) {
	h.forwardUpstream(c, "/players/"+url.PathEscape(c.Param("player_id"))+"/stats", nil)
}

// @Summary      Player profile
// @Tags         players
// @Produce      json
// @Param        player_id  path  string  true  "Player id"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/players/{player_id}/profile [get]
func (h *Handler) playerProfile(c *gin.Context) {
	h.forwardUpstream(c, "/players/"+url.PathEscape(c.Param("player_id"))+"/profile", nil)
}

// @Summary      Player achievements
// @Tags         players
// @Produce      json
// @Param        player_id  path  string  true  "Player id"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/players/{player_id}/achievements [get]
func (h *Handler) playerAchievements(c *gin.Context) {
	h.forwardUpstream(c, "/players/"+url.PathEscape(c.Param("player_id"))+"/achievements", nil)
}

// @Summary      Player transfer history
// @Tags         players
// @Produce      json
// @Param        player_id  path  string  true  "Player id"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/players/{player_id}/transfers [get]
func (h *Handler) playerTransfers(c *gin.Context) {
	h.forwardUpstream(c, "/players/"+url.PathEscape(c.Param("player_id"))+"/transfers", nil)
}

// @Summary      Player injury history
// @Tags         players
// @Produce      json
// @Param        player_id    path   string  true   "Player id"
// @Param        page_number  query  int     false  "Result page"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/players/{player_id}/injuries [get]
func (h *Handler) playerInjuries(c *gin.Context) {
	h.forwardUpstream(c, "/players/"+url.PathEscape(c.Param("player_id"))+"/injuries", pageQuery(c))
}

// @Summary      Player market value
// @Tags         players
// @Produce      json
// @Param        player_id  path  string  true  "Player id"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/players/{player_id}/market_value [get]
func (h *Handler) playerMarketValue(c *gin.Context) {
	h.forwardUpstream(c, "/players/"+url.PathEscape(c.Param("player_id"))+"/market_value", nil)
}

// @Summary      Player jersey numbers
// @Tags         players
// @Produce      json
// @Param        player_id  path  string  true  "Player id"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/players/{player_id}/jersey_numbers [get]
func (h *Handler) playerJerseyNumbers(c *gin.Context) {
	h.forwardUpstream(c, "/players/"+url.PathEscape(c.Param("player_id"))+"/jersey_numbers", nil)
}

// @Summary      Search clubs
// @Tags         clubs
// @Produce      json
// @Param        club_name    path   string  true   "Name to search"
// @Param        page_number  query  int     false  "Result page"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/clubs/search/{club_name} [get]
func (h *Handler) clubSearch(c *gin.Context) {
	h.forwardUpstream(c, "/clubs/search/"+url.PathEscape(c.Param("club_name")), pageQuery(c))
}

// @Summary      Club profile
// @Tags         clubs
// @Produce      json
// @Param        club_id  path  string  true  "Club id"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/clubs/{club_id}/profile [get]
func (h *Handler) clubProfile(c *gin.Context) {
	h.forwardUpstream(c, "/clubs/"+url.PathEscape(c.Param("club_id"))+"/profile", nil)
}

// @Summary      Club squad
// @Tags         clubs
// @Produce      json
// @Param        club_id    path   string  true   "Club id"
// @Param        season_id  query  string  false  "Season id"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/clubs/{club_id}/players [get]
func (h *Handler) clubPlayers(c *gin.Context) {
	query := url.Values{}
	if season := c.Query("season_id"); season != "" {
		query.Set("season_id", season)
	}
	h.forwardUpstream(c, "/clubs/"+url.PathEscape(c.Param("club_id"))+"/players", query)
}

// @Summary      Search competitions
// @Tags         competitions
// @Produce      json
// @Param        competition_name  path   string  true   "Name to search"
// @Param        page_number       query  int     false  "Result page"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/competitions/search/{competition_name} [get]
func (h *Handler) competitionSearch(c *gin.Context) {
	h.forwardUpstream(c, "/competitions/search/"+url.PathEscape(c.Param("competition_name")), pageQuery(c))
}
