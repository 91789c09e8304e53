package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
)

// PrincipalContextKey is the gin context key the resolved principal is
// stored under
const PrincipalContextKey = "principal"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and resolves the access principal
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		principal, err := m.service.ResolvePrincipal(claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to resolve principal", "details": err.Error()})
			c.Abort()
			return
		}

		// Set user context
		c.Set(PrincipalContextKey, principal)
		c.Set("email", principal.Email)
		c.Set("tenant_id", access.CurrentTenant(principal).String())
		c.Request = c.Request.WithContext(access.WithPrincipal(c.Request.Context(), principal))

		c.Next()
	}
}

// RequireRole enforces that the principal's role satisfies the given set
// (hierarchical, so higher tiers always pass)
func (m *AuthMiddleware) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !access.HasRole(principal, roles...) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// PrincipalFrom extracts the resolved principal from the gin context
func PrincipalFrom(c *gin.Context) (access.Principal, bool) {
	value, exists := c.Get(PrincipalContextKey)
	if !exists {
		return access.Principal{}, false
	}
	principal, ok := value.(access.Principal)
	return principal, ok
}
