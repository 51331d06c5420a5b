package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/antarcticanco/storefront-app/utils"
)

// EmployeeAuthMiddleware menjaga seluruh surface /employee. Session flag
// berbentuk token hasil login access code; tanpa token valid, request
// ditolak (ekuivalen redirect ke halaman login di UI).
func EmployeeAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			token = c.Query("token")
		}

		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("employee session required"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(token, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		if claims.Role != "employee" {
			utils.RespondError(c, http.StatusForbidden, errors.New("employee role required"))
			c.Abort()
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
