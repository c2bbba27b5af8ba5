package middleware

import (
	"animalshop-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware checks if user has admin role. Must run after
// AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != "admin" {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
