package middleware

import (
	"errors"
	"net/http"
	"strings"

	"hawaiielite-properties/internal/auth"
	apperrors "hawaiielite-properties/internal/errors"
	"hawaiielite-properties/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

// AccessTokenCookie is accepted as an alternative to the Authorization header.
const AccessTokenCookie = "access_token"

// AuthMiddleware requires a valid bearer token. A missing token is a 401,
// a token that fails verification is a 403.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, apperrors.ErrCodeUnauthorized, "You are not authorized.")
			return
		}

		claims, err := auth.ValidateJWT(token, secret)
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				abortWithError(c, http.StatusUnauthorized, apperrors.ErrCodeUnauthorized, "You are not authorized.")
				return
			}
			logger.GlobalLogger.Debugf("token rejected path=%s client_ip=%s: %v", c.Request.URL.Path, c.ClientIP(), err)
			abortWithError(c, http.StatusForbidden, "FORBIDDEN", "Forbidden")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", false
		}
		return strings.TrimSpace(parts[1]), true
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

// UserID returns the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"message": message,
			"code":    code,
		},
	})
}
