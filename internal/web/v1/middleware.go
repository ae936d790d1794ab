package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/logging"
)

// userIDKey is the gin context key under which RequireAuth stores the
// authenticated user's ID.
const userIDKey = "user_id"

const bearerPrefix = "Bearer "

// RequireAuth rejects the request with 401 before any business logic runs
// unless it carries a valid, unexpired bearer token. On success the subject
// user ID is stored in the gin context for handlers to read via userID().
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}
		token := strings.TrimPrefix(authHeader, bearerPrefix)

		uid, err := h.auth.ValidateToken(token)
		if err != nil {
			logging.FromContext(c.Request.Context()).Warn().Err(err).Msg("Token validation failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(userIDKey, uid)
		c.Next()
	}
}

// userID returns the authenticated user ID stored by RequireAuth.
func userID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}
