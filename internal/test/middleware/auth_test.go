package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtf-orders-backend/internal/config"
	"dtf-orders-backend/internal/middleware"
)

func testConfig() *config.Config {
	return &config.Config{
		SessionSecret: "test-secret-key-for-jwt-signing-must-be-long-enough",
	}
}

func protectedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AdminAuth(cfg))
	router.GET("/test", func(c *gin.Context) {
		user, _ := c.Get(middleware.AdminUserKey)
		c.JSON(http.StatusOK, gin.H{"user": user})
	})
	return router
}

func TestAdminAuth_NoToken(t *testing.T) {
	router := protectedRouter(testConfig())

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuth_InvalidToken(t *testing.T) {
	router := protectedRouter(testConfig())

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuth_WrongSecret(t *testing.T) {
	otherCfg := &config.Config{SessionSecret: "a-completely-different-secret-value"}
	token, err := middleware.NewSessionToken(otherCfg, "admin")
	require.NoError(t, err)

	router := protectedRouter(testConfig())

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuth_ValidBearerToken(t *testing.T) {
	cfg := testConfig()
	token, err := middleware.NewSessionToken(cfg, "admin")
	require.NoError(t, err)

	router := protectedRouter(cfg)

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestAdminAuth_ValidCookieToken(t *testing.T) {
	cfg := testConfig()
	token, err := middleware.NewSessionToken(cfg, "admin")
	require.NoError(t, err)

	router := protectedRouter(cfg)

	req, _ := http.NewRequest("GET", "/test", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
