package middleware

import (
	"net/http"

	"mememage-web/controllers"
	"mememage-web/helpers"
	"mememage-web/models"

	"github.com/gin-gonic/gin"
)

// ClientMiddleware identifies the browser by its client cookie, issuing a new
// one when it is missing or malformed, and stores the client's controller
// in the context.
func ClientMiddleware(registry *controllers.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := c.Cookie(models.ClientCookie)
		if err != nil || !helpers.ValidID(clientID, models.ClientIDBytes) {
			clientID, err = helpers.GenerateID(models.ClientIDBytes)
			if err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(models.ClientCookie, clientID, int(models.ClientCookieMaxAge.Seconds()), "/", "", false, true)
		}

		c.Set("client_id", clientID)
		c.Set("controller", registry.Get(c.Request.Context(), clientID))
		c.Next()
	}
}

func Controller(c *gin.Context) *controllers.Controller {
	return c.MustGet("controller").(*controllers.Controller)
}

func ClientID(c *gin.Context) string {
	return c.GetString("client_id")
}
