package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type commandRequest struct {
	Command string `json:"command" binding:"required"`
}

// @Summary      Parse a voice command into a structured intent
// @Description  Model-backed extraction with a deterministic rule fallback; always returns an intent.
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        body  body      commandRequest  true  "Free-text command"
// @Success      200   {object}  models.Intent
// @Failure      400   {object}  map[string]string
// @Router       /api/parse-command [post]
func (h *Handler) parseCommand(c *gin.Context) {
	var input commandRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	intent := h.services.Intent.Parse(c.Request.Context(), input.Command)
	c.JSON(http.StatusOK, intent)
}
