package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/antarcticanco/storefront-app/utils"
)

// WebSocketAuthMiddleware memvalidasi token dari query string karena
// browser tidak bisa mengirim header Authorization saat upgrade ws.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(401)
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
