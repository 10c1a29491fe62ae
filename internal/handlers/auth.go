package handlers

import (
	"errors"
	"net/http"

	"transfermarkt_gateway/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "token, username"
// @Failure      400   {object}  map[string]string  "duplicate username or email"
// @Router       /api/auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRegister, "auth_register_failed", err,
			"username", input.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "username": input.Username})
}

// @Summary      Log in
// @Description  Issues a fresh bearer token; every earlier token for the user stops working.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "token, username"
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLogin, "auth_login_failed", err,
			"username", input.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "username": input.Username})
}

// @Summary      Current user info
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string  "username, email"
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
// @Security     BearerAuth
func (h *Handler) me(c *gin.Context) {
	username := currentUsername(c)
	u, err := h.services.Me(c.Request.Context(), username)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadUser, "auth_me_failed", err,
			"username", username)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": u.Username, "email": u.Email})
}
