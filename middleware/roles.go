package middleware

import (
	"net/http"

	"github.com/safe-edu/api-go/utils"

	"github.com/gin-gonic/gin"
)

// RequireRoles rejects any request whose authenticated role is not in the
// allow list. Must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.GetUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing role information"})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if user.Role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to access this resource"})
		c.Abort()
	}
}
