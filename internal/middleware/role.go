package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const RoleAdmin = "admin"

// RequireRole bloqueia a rota para quem não tem o papel exigido.
// Assume AuthMiddleware já executado.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := c.Get(ContextUserRole)
		if current != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// IsAdmin lê o papel já injetado pelo AuthMiddleware.
func IsAdmin(c *gin.Context) bool {
	role, _ := c.Get(ContextUserRole)
	return role == RoleAdmin
}
