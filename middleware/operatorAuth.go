package middleware

import (
	"net/http"
	"strings"

	"stitchdesk/utils"

	"github.com/gin-gonic/gin"
)

// OperatorAuthMiddleware validates the operator's bearer token and stores
// the operator ID in the context. Session issuance lives outside this
// service; only validation happens here.
func OperatorAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		operatorID, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("operatorID", operatorID)
		c.Next()
	}
}
