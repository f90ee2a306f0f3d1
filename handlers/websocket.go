package handlers

import (
	"mememage-web/controllers"
	"mememage-web/middleware"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// WebSocket subscribes the socket to the client's feed updates.
func WebSocket(hub *controllers.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := controllers.Upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Error("websocket upgrade failed", "err", err)
			return
		}
		hub.Serve(middleware.ClientID(c), ws)
	}
}
