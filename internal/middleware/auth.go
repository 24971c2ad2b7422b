// ================== internal/middleware/auth.go ==================
package middleware

import (
	"strings"

	"github.com/xyz-asif/skincare/internal/pkg/response"
	"github.com/xyz-asif/skincare/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

const emailKey = "email"

// TokenParser verifies a bearer token.
type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

func Auth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		// Support both "Bearer <token>" (case-insensitive) and raw token in header
		fields := strings.Fields(authHeader)
		var tokenString string
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		} else {
			tokenString = authHeader
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			response.Unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
			c.Abort()
			return
		}

		c.Set(emailKey, claims.Email())
		c.Next()
	}
}

// CurrentEmail returns the authenticated account email, or "" when the
// request did not pass through Auth.
func CurrentEmail(c *gin.Context) string {
	return c.GetString(emailKey)
}
