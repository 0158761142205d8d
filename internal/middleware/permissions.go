package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/IBilba/pet-a-vet/internal/httperr"
	"github.com/IBilba/pet-a-vet/internal/roles"
)

// RequirePermission gates a route group on the role→permission map.
// Must run after AuthMiddleware.
func RequirePermission(p roles.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !roles.Has(ActorRole(c), p) {
			httperr.Forbidden(c, "insufficient_permissions", "You do not have permission to do that.")
			c.Abort()
			return
		}
		c.Next()
	}
}
