package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dtf-orders-backend/internal/config"
	"dtf-orders-backend/internal/middleware"
	"dtf-orders-backend/internal/models"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login godoc
// @Summary     Admin login
// @Description Exchanges admin credentials for a session token. The token is
// @Description also set as a cookie for browser clients.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.LoginResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "username and password are required"})
		return
	}

	if req.Username != h.cfg.AdminUser || req.Password != h.cfg.AdminPassword {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	token, err := middleware.NewSessionToken(h.cfg, req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	secure := h.cfg.Environment == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(middleware.SessionMaxAge.Seconds()), "/", "", secure, true)

	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}
