package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/antarcticanco/storefront-app/events"
	"github.com/antarcticanco/storefront-app/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origin sudah disaring CORS middleware
	},
}

// DashboardWSHandler meng-upgrade koneksi dashboard employee dan
// mendaftarkannya ke hub. Pesan masuk diabaikan; koneksi ditutup saat
// client pergi.
func DashboardWSHandler(hub *events.DashboardHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.ErrorLogger.Printf("dashboard ws upgrade failed: %v", err)
			return
		}

		hub.RegisterClient(conn)
		go func() {
			defer hub.UnregisterClient(conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
