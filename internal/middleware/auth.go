package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openvote/election-backend/internal/entity"
	jwtlib "github.com/openvote/election-backend/internal/lib/jwt"
)

const identityKey = "identity"

type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// Middleware validates the bearer access token and stores the identity it
// encodes on the request context.
func (m *AuthMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := extractTokenFromHeader(c.GetHeader("Authorization"))
		if accessToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing access token"})
			return
		}

		identity, err := jwtlib.ParseIdentity(accessToken, m.secret, "access")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin rejects non-admin tokens. A voter reaching an admin page is
// redirected to their own home instead of being told the page exists.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusFound, gin.H{"redirect": "/vote"})
			return
		}
		c.Next()
	}
}

// RequireVoter rejects non-voter tokens, sending admins back to their
// dashboard.
func (m *AuthMiddleware) RequireVoter() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if !identity.IsVoter() {
			c.AbortWithStatusJSON(http.StatusFound, gin.H{"redirect": "/elections"})
			return
		}
		c.Next()
	}
}

// IdentityFromContext returns the identity stored by Middleware.
func IdentityFromContext(c *gin.Context) (entity.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return entity.Identity{}, false
	}
	identity, ok := value.(entity.Identity)
	return identity, ok
}

func extractTokenFromHeader(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
