package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"dtf-orders-backend/internal/config"
)

// SessionCookie is the cookie the admin UI stores its session token in.
const SessionCookie = "dtf_session"

// AdminUserKey is the gin context key holding the authenticated admin name.
const AdminUserKey = "admin_user"

// SessionMaxAge bounds how long an issued admin session token stays valid.
const SessionMaxAge = 7 * 24 * time.Hour

// NewSessionToken issues a signed admin session token for username.
func NewSessionToken(cfg *config.Config, username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(SessionMaxAge).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SessionSecret))
}

// AdminAuth gates the admin surface. It accepts the session token either as
// a Bearer header or as the session cookie.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString, _ = c.Cookie(SessionCookie)
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.SessionSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session claims"})
			c.Abort()
			return
		}

		if role, _ := claims["role"].(string); role != "admin" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		c.Set(AdminUserKey, sub)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
