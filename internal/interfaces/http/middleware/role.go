package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopx/backend/internal/domain/identity"
	"github.com/shopx/backend/internal/interfaces/http/dto"
)

// RequireRole rejects requests whose authenticated principal does not
// carry the given role. Must run after JWT authentication.
func RequireRole(role identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actual := GetJWTRole(c)
		if actual == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.ErrorEnvelope(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}
		if actual != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.ErrorEnvelope(dto.ErrCodeForbidden, "Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// RequireAdmin restricts a route to administrators
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(identity.RoleAdmin)
}
