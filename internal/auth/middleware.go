package auth

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/helix90/list-handler/internal/api/apperrors"
	"github.com/helix90/list-handler/internal/api/models"
	"github.com/helix90/list-handler/internal/api/response"
	"github.com/helix90/list-handler/internal/token"
)

const (
	principalKey = "auth.principal"
	claimsKey    = "auth.claims"
)

// RequireAuth extracts the bearer token from the Authorization header,
// resolves the principal and stores it on the request context. Websocket
// clients cannot set headers, so a token query parameter is accepted as a
// fallback.
func (g *Guard) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := bearerToken(c)
		if bearer == "" {
			response.Unauthenticated(c)
			c.Abort()
			return
		}

		principal, claims, err := g.ResolvePrincipal(c.Request.Context(), bearer)
		if err != nil {
			response.Unauthenticated(c)
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireOwner enforces the path-user check on /users/:userId routes. It
// must run after RequireAuth and before any handler touching data.
func (g *Guard) RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		pathUserID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
		if err != nil {
			// A non-numeric user id can never match any principal.
			response.Error(c, apperrors.ErrNotFound)
			c.Abort()
			return
		}

		if err := g.AuthorizeOwner(Principal(c), pathUserID); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Principal returns the authenticated user stored by RequireAuth.
func Principal(c *gin.Context) *models.User {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, _ := v.(*models.User)
	return principal
}

// Claims returns the verified token claims stored by RequireAuth.
func Claims(c *gin.Context) token.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return token.Claims{}
	}
	claims, _ := v.(token.Claims)
	return claims
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}
