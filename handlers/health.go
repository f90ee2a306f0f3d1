package handlers

import (
	"context"
	"net/http"
	"time"

	"mememage-web/controllers"
	"mememage-web/models"

	"github.com/gin-gonic/gin"
)

type Upstream interface {
	Health(ctx context.Context) (string, error)
}

// Health reports this server as up regardless of the API; the API's own
// status is reported alongside.
func Health(api Upstream, registry *controllers.Registry, idleTimeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		upstream := gin.H{"reachable": true}
		msg, err := api.Health(c.Request.Context())
		if err != nil {
			upstream = gin.H{"reachable": false, "error": err.Error()}
		} else {
			upstream["status"] = msg
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"upstream": upstream,
			"clients":  registry.Stats(models.IdleThreshold, idleTimeout),
		})
	}
}
