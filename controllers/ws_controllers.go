package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/dongans/billiard-app/events"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Sesuaikan dengan kebutuhan keamanan
	},
}

// DashboardWSHandler -> endpoint WebSocket untuk dashboard admin; menerima
// siaran event booking/meja tanpa perlu polling.
func DashboardWSHandler(hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		role := roleInterface.(string)

		if role != "admin" && role != "staff" {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		hub.Register(ws, role)

		// Koneksi hanya dipakai satu arah; loop baca sekadar mendeteksi
		// disconnect dari sisi client.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.Unregister(ws)
	}
}
