package controllers

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"mememage-web/client"
	"mememage-web/models"
	"mememage-web/utils"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var (
	ErrUnknownPage      = errors.New("unknown page")
	ErrUnknownAction    = errors.New("unknown action")
	ErrUnknownTemplate  = errors.New("unknown template")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidMemeID    = errors.New("invalid meme id")
)

// MemeAPI is the subset of the MemEmage API the controller calls.
type MemeAPI interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	ListMemes(ctx context.Context, limit, offset int) ([]models.Meme, error)
	MyMemes(ctx context.Context, token string) ([]models.Meme, error)
	CreateMeme(ctx context.Context, token string, req models.CreateMemeRequest) (*models.Meme, error)
	GetMeme(ctx context.Context, id string) (*models.Meme, error)
	LikeMeme(ctx context.Context, id string) error
}

type Options struct {
	FeedLimit int
	Templates []string
	// OnFeed is called after every feed state change, outside the
	// controller's lock.
	OnFeed func(page models.Page, state models.FeedState)
}

// Controller holds everything one client sees: its session, the active
// page, the creation draft and the latest state of both feeds.
type Controller struct {
	api      MemeAPI
	sessions *SessionManager
	opts     Options
	l        *log.Logger

	mu               sync.Mutex
	page             models.Page
	selectedTemplate string
	draft            models.Draft
	feeds            map[models.Page]models.FeedState
	notices          []models.Notice
}

func NewController(api MemeAPI, sessions *SessionManager, opts Options) *Controller {
	if opts.FeedLimit <= 0 {
		opts.FeedLimit = models.DefaultFeedLimit
	}
	if opts.Templates == nil {
		opts.Templates = models.DefaultTemplates
	}
	return &Controller{
		api:      api,
		sessions: sessions,
		opts:     opts,
		l:        utils.NewLogger("controller"),
		page:     models.PageHome,
		feeds: map[models.Page]models.FeedState{
			models.PageHome:    {Kind: models.FeedLoading, Text: models.TextLoadingMemes},
			models.PageMyMemes: {Kind: models.FeedLoading, Text: models.TextLoadingOwnMemes},
		},
	}
}

func (c *Controller) Sessions() *SessionManager {
	return c.sessions
}

// Snapshot is what a render of the client's current state needs.
type Snapshot struct {
	Page             models.Page
	Session          models.Session
	Draft            models.Draft
	SelectedTemplate string
	Templates        []string
	Home             models.FeedState
	Mine             models.FeedState
	Notices          []models.Notice
}

// Snapshot drains pending notices: each one is shown exactly once.
func (c *Controller) Snapshot() Snapshot {
	session := c.sessions.Current()

	c.mu.Lock()
	defer c.mu.Unlock()

	notices := c.notices
	c.notices = nil
	return Snapshot{
		Page:             c.page,
		Session:          session,
		Draft:            c.draft,
		SelectedTemplate: c.selectedTemplate,
		Templates:        slices.Clone(c.opts.Templates),
		Home:             c.feeds[models.PageHome],
		Mine:             c.feeds[models.PageMyMemes],
		Notices:          notices,
	}
}

func (c *Controller) Page() models.Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Draft returns the create form state. Unlike Snapshot it leaves pending
// notices queued.
func (c *Controller) Draft() models.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Show activates page and runs its load side effect: home reloads the public
// feed, myMemes loads the client's own memes.
func (c *Controller) Show(ctx context.Context, page models.Page) error {
	if _, ok := models.ParsePage(string(page)); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}

	c.mu.Lock()
	c.page = page
	c.mu.Unlock()

	switch page {
	case models.PageMyMemes:
		c.LoadOwnedFeed(ctx)
	case models.PageHome:
		c.LoadPublicFeed(ctx)
	}
	return nil
}

func (c *Controller) Signup(ctx context.Context, req models.SignupRequest) error {
	res, err := c.api.Signup(ctx, req)
	if err != nil {
		c.l.Error("signup failed", "username", req.Username, "err", err)
		c.notifyError(failureMessage(err, "Signup failed"))
		return err
	}
	return c.establish(ctx, res, "Welcome to MemEmage! 🎉")
}

func (c *Controller) Login(ctx context.Context, req models.LoginRequest) error {
	res, err := c.api.Login(ctx, req)
	if err != nil {
		c.l.Error("login failed", "username", req.Username, "err", err)
		c.notifyError(failureMessage(err, "Login failed"))
		return err
	}
	return c.establish(ctx, res, "Welcome back! 👋")
}

func (c *Controller) establish(ctx context.Context, res *models.AuthResponse, welcome string) error {
	if err := c.sessions.Establish(ctx, res); err != nil {
		c.l.Error("failed to store session", "err", err)
		c.notifyError("Could not save your session. Please try again.")
		return err
	}
	c.l.Info("signed in", "username", res.User.Username)
	c.Show(ctx, models.PageHome)
	c.notify(welcome)
	return nil
}

func (c *Controller) Logout(ctx context.Context) error {
	err := c.sessions.Clear(ctx)
	if err != nil {
		c.l.Error("failed to clear stored session", "err", err)
	}
	c.Show(ctx, models.PageHome)
	return err
}

// LoadPublicFeed replaces the home feed with the most recent public memes.
func (c *Controller) LoadPublicFeed(ctx context.Context) {
	c.setFeed(models.PageHome, models.FeedState{Kind: models.FeedLoading, Text: models.TextLoadingMemes})

	memes, err := c.api.ListMemes(ctx, c.opts.FeedLimit, 0)
	c.setFeed(models.PageHome, c.feedState(memes, err, models.TextNoMemes))
}

// LoadOwnedFeed redirects to login instead of issuing a request when the
// client has no token.
func (c *Controller) LoadOwnedFeed(ctx context.Context) {
	token := c.sessions.Token()
	if token == "" {
		c.Show(ctx, models.PageLogin)
		return
	}

	c.setFeed(models.PageMyMemes, models.FeedState{Kind: models.FeedLoading, Text: models.TextLoadingOwnMemes})

	memes, err := c.api.MyMemes(ctx, token)
	c.setFeed(models.PageMyMemes, c.feedState(memes, err, models.TextNoOwnMemes))
}

// feedState maps a load outcome to a feed state. An API-reported failure
// shows apiFailureText; anything else shows the load error.
func (c *Controller) feedState(memes []models.Meme, err error, apiFailureText string) models.FeedState {
	if err == nil {
		if len(memes) == 0 {
			return models.FeedState{Kind: models.FeedEmpty, Text: models.TextNoMemes}
		}
		return models.FeedState{Kind: models.FeedReady, Memes: memes}
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		c.l.Warn("feed not available", "status", apiErr.Status, "err", apiErr.Message)
		return models.FeedState{Kind: models.FeedEmpty, Text: apiFailureText}
	}
	c.l.Error("load memes failed", "err", err)
	return models.FeedState{Kind: models.FeedError, Text: models.TextLoadError}
}

func (c *Controller) setFeed(page models.Page, state models.FeedState) {
	c.mu.Lock()
	c.feeds[page] = state
	c.mu.Unlock()

	if c.opts.OnFeed != nil {
		c.opts.OnFeed(page, state)
	}
}

// Submit creates a meme from the given draft and the selected template.
// Empty captions are sent as null.
func (c *Controller) Submit(ctx context.Context, title, topText, bottomText string) error {
	token := c.sessions.Token()
	if token == "" {
		c.notify("Please login to create memes")
		c.Show(ctx, models.PageLogin)
		return ErrNotAuthenticated
	}

	c.mu.Lock()
	c.draft.Title = title
	c.draft.TopText = topText
	c.draft.BottomText = bottomText
	selected := c.selectedTemplate
	c.mu.Unlock()

	_, err := c.api.CreateMeme(ctx, token, models.CreateMemeRequest{
		Title:        title,
		TopText:      nullable(topText),
		BottomText:   nullable(bottomText),
		TemplateName: nullable(selected),
	})
	if err != nil {
		c.l.Error("create meme failed", "err", err)
		c.notifyError(failureMessage(err, "Failed to create meme"))
		return err
	}

	c.notify("Meme created successfully! 🎉")

	// The selected template is deliberately kept.
	c.mu.Lock()
	c.draft = models.Draft{}
	c.mu.Unlock()

	c.Show(ctx, models.PageMyMemes)
	return nil
}

// UpdatePreview mirrors the caption inputs into the preview.
func (c *Controller) UpdatePreview(topText, bottomText string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.TopText = topText
	c.draft.BottomText = bottomText
	c.draft.PreviewTop = topText
	c.draft.PreviewBottom = bottomText
}

func (c *Controller) SelectTemplate(name string) error {
	if !slices.Contains(c.opts.Templates, name) {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}

	c.mu.Lock()
	c.selectedTemplate = name
	c.mu.Unlock()
	return nil
}

// View surfaces a single meme's counters. Failures are only logged.
func (c *Controller) View(ctx context.Context, id string) error {
	if err := validateMemeID(id); err != nil {
		c.l.Warn("view meme", "err", err)
		return err
	}

	m, err := c.api.GetMeme(ctx, id)
	if err != nil {
		c.l.Error("view meme failed", "id", id, "err", err)
		return err
	}
	c.notify(fmt.Sprintf("Viewing: %s\nViews: %d\nLikes: %d", m.Title, m.Views, m.Likes))
	return nil
}

// Like sends one like and reloads the public feed on success. Repeated
// likes are not guarded against.
func (c *Controller) Like(ctx context.Context, id string) error {
	if err := validateMemeID(id); err != nil {
		c.l.Warn("like meme", "err", err)
		return err
	}

	if err := c.api.LikeMeme(ctx, id); err != nil {
		c.l.Error("like meme failed", "id", id, "err", err)
		return err
	}
	c.LoadPublicFeed(ctx)
	return nil
}

func (c *Controller) notify(msg string) {
	c.mu.Lock()
	c.notices = append(c.notices, models.Notice{Message: msg})
	c.mu.Unlock()
}

func (c *Controller) notifyError(msg string) {
	c.mu.Lock()
	c.notices = append(c.notices, models.Notice{Message: msg, Error: true})
	c.mu.Unlock()
}

// failureMessage picks the server's message for API failures and the generic
// network message for everything else.
func failureMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}
	return models.NetworkErrorMessage
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func validateMemeID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidMemeID, id)
	}
	return nil
}
