package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/Talts01/SocialPizza/internal/auth"
	"github.com/Talts01/SocialPizza/internal/domain"
)

const (
	CallerIDKey   = "caller_id"
	CallerRoleKey = "caller_role"
)

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Auth resolves the caller from the Authorization header and stores the
// identity in the request context. Routes behind it never see an anonymous
// request.
func Auth(tokens TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing bearer token"},
			)
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": err.Error()},
			)
			return
		}

		c.Set(CallerIDKey, claims.UserID)
		c.Set(CallerRoleKey, string(claims.Role))

		c.Next()
	}
}

// RequireRole gates a route group to the given roles. It assumes Auth ran
// earlier in the chain.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		callerRole := domain.Role(c.GetString(CallerRoleKey))
		for _, role := range roles {
			if callerRole == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			ginext.H{"error": "insufficient role"},
		)
	}
}
