package middleware

import (
	"net/http"
	"strings"

	"clubhub-backend/internal/auth"
	"clubhub-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserIDKey is the gin context key holding the authenticated subject.
const UserIDKey = "user_id"

type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

// Auth rejects requests without a valid bearer token with 401. On success the
// token subject is stored under UserIDKey.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}

		// Expect: "Bearer token"
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			abortUnauthorized(c, "Invalid token format")
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(raw))
		if err != nil {
			logger.From(c.Request.Context()).Debug("token rejected", zap.Error(err))
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(UserIDKey, claims.Subject)
		c.Next()
	}
}

// UserID returns the authenticated subject, or "" on public routes.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
