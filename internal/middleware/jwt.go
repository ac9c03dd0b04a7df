package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/sourcing-lens/internal/i18n"
	"github.com/guttosm/sourcing-lens/internal/service"
)

const bearerPrefix = "Bearer "

// BearerIdentity verifies the Authorization bearer token and stores the
// caller's user id and email in the context.
func BearerIdentity(verifier service.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}
		if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		token := strings.TrimSpace(header[len(bearerPrefix):])
		if token == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Set(string(UserEmailKey), claims.Email)
		c.Next()
	}
}

// GetUserID returns the verified caller id, or "" for anonymous requests.
func GetUserID(c *gin.Context) string {
	return c.GetString(string(UserIDKey))
}
