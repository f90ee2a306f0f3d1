package handlers

import (
	"errors"
	"net/http"

	"mememage-web/controllers"
	"mememage-web/middleware"
	"mememage-web/models"
	"mememage-web/templates"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

// Resolver turns image references from the API into browser-loadable URLs.
type Resolver func(string) string

// Home is a fresh page load: it shows home, which reloads the public feed.
func Home(resolve Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl := middleware.Controller(c)
		ctrl.Show(c.Request.Context(), models.PageHome)
		render(c, ctrl, resolve)
	}
}

func Page(resolve Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl := middleware.Controller(c)
		if err := ctrl.Show(c.Request.Context(), models.Page(c.Param("name"))); err != nil {
			c.String(http.StatusNotFound, "Page not found")
			return
		}
		render(c, ctrl, resolve)
	}
}

// Action dispatches the named action with the posted form and renders the
// active page afterwards. Failures the user should see are already queued
// as notices, so only malformed requests change the status code. The preview
// action answers with the preview fragment alone and leaves notices queued.
func Action(resolve Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl := middleware.Controller(c)

		if err := c.Request.ParseForm(); err != nil {
			c.String(http.StatusBadRequest, "Invalid form")
			return
		}
		args := controllers.Args{}
		for key := range c.Request.PostForm {
			args[key] = c.Request.PostForm.Get(key)
		}

		action := c.Param("name")
		err := ctrl.Dispatch(c.Request.Context(), action, args)
		switch {
		case errors.Is(err, controllers.ErrUnknownAction), errors.Is(err, controllers.ErrUnknownPage):
			c.String(http.StatusNotFound, "Not found")
			return
		case errors.Is(err, controllers.ErrUnknownTemplate), errors.Is(err, controllers.ErrInvalidMemeID):
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		if action == "preview" {
			templ.Handler(templates.Preview(ctrl.Draft())).ServeHTTP(c.Writer, c.Request)
			return
		}
		render(c, ctrl, resolve)
	}
}

func render(c *gin.Context, ctrl *controllers.Controller, resolve Resolver) {
	component := templates.Index(templates.View{Snapshot: ctrl.Snapshot(), Resolve: resolve})
	handler := templ.Handler(component)
	handler.ServeHTTP(c.Writer, c.Request)
}
