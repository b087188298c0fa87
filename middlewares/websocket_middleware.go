package middlewares

import (
	"github.com/dongans/billiard-app/utils"
	"github.com/gin-gonic/gin"
)

// WebSocketAuthMiddleware menerima token lewat query string karena browser
// tidak bisa menaruh Authorization header pada handshake websocket.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(401)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set("role", claims.Role)
		c.Set("userID", claims.UserID)

		c.Next()
	}
}
