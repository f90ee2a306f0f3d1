package routes

import (
	"time"

	"mememage-web/controllers"
	"mememage-web/handlers"
	"mememage-web/middleware"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Registry    *controllers.Registry
	Hub         *controllers.Hub
	API         handlers.Upstream
	Resolve     handlers.Resolver
	IdleTimeout time.Duration
}

func MemEmageRouter(r *gin.Engine, d Deps) {
	r.StaticFile("/app.css", "./static/css/app.css")

	r.GET("/health", handlers.Health(d.API, d.Registry, d.IdleTimeout))

	client := r.Group("/", middleware.ClientMiddleware(d.Registry))
	client.GET("/", handlers.Home(d.Resolve))
	client.GET("/page/:name", handlers.Page(d.Resolve))
	client.POST("/action/:name", handlers.Action(d.Resolve))
	client.GET("/ws", handlers.WebSocket(d.Hub))
}
