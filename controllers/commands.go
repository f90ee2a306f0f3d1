package controllers

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"mememage-web/models"
)

// Args carries an action's form values.
type Args map[string]string

type Command func(ctx context.Context, c *Controller, args Args) error

var commands = map[string]Command{
	"show": func(ctx context.Context, c *Controller, a Args) error {
		return c.Show(ctx, models.Page(a["page"]))
	},
	"refresh": func(ctx context.Context, c *Controller, _ Args) error {
		return c.Show(ctx, c.Page())
	},
	"signup": func(ctx context.Context, c *Controller, a Args) error {
		return c.Signup(ctx, models.SignupRequest{
			Username: a["username"],
			Email:    a["email"],
			Password: a["password"],
		})
	},
	"login": func(ctx context.Context, c *Controller, a Args) error {
		return c.Login(ctx, models.LoginRequest{
			Username: a["username"],
			Password: a["password"],
		})
	},
	"logout": func(ctx context.Context, c *Controller, _ Args) error {
		return c.Logout(ctx)
	},
	"create": func(ctx context.Context, c *Controller, a Args) error {
		return c.Submit(ctx, a["title"], a["top_text"], a["bottom_text"])
	},
	"preview": func(_ context.Context, c *Controller, a Args) error {
		c.UpdatePreview(a["top_text"], a["bottom_text"])
		return nil
	},
	"select-template": func(_ context.Context, c *Controller, a Args) error {
		return c.SelectTemplate(a["template"])
	},
	"view": func(ctx context.Context, c *Controller, a Args) error {
		return c.View(ctx, a["id"])
	},
	"like": func(ctx context.Context, c *Controller, a Args) error {
		return c.Like(ctx, a["id"])
	},
}

// Actions lists the names Dispatch accepts.
func Actions() []string {
	return slices.Sorted(maps.Keys(commands))
}

func (c *Controller) Dispatch(ctx context.Context, action string, args Args) error {
	cmd, ok := commands[action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	if args == nil {
		args = Args{}
	}
	return cmd(ctx, c, args)
}
