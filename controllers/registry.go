package controllers

import (
	"context"
	"sync"
	"time"

	"mememage-web/models"
	"mememage-web/storage"
	"mememage-web/utils"

	"github.com/charmbracelet/log"
)

type RegistryOptions struct {
	FeedLimit int
	Templates []string
	// OnFeed receives feed changes of every client.
	OnFeed func(clientID string, page models.Page, state models.FeedState)
}

type clientEntry struct {
	ctrl         *Controller
	lastActivity time.Time
}

// Registry keeps one Controller per client ID in memory. The session of an
// evicted client survives in storage and is restored on its next request.
type Registry struct {
	api   MemeAPI
	store storage.Store
	opts  RegistryOptions
	l     *log.Logger
	now   func() time.Time

	mu      sync.Mutex
	clients map[string]*clientEntry
}

func NewRegistry(api MemeAPI, store storage.Store, opts RegistryOptions) *Registry {
	return &Registry{
		api:     api,
		store:   store,
		opts:    opts,
		l:       utils.NewLogger("registry"),
		now:     time.Now,
		clients: make(map[string]*clientEntry),
	}
}

// Get returns the client's controller, creating and restoring it on first
// use, and records activity. A controller whose restore failed is returned
// without being kept, so the next request tries again.
func (r *Registry) Get(ctx context.Context, clientID string) *Controller {
	if ctrl, ok := r.touch(clientID); ok {
		return ctrl
	}

	opts := Options{
		FeedLimit: r.opts.FeedLimit,
		Templates: r.opts.Templates,
	}
	if r.opts.OnFeed != nil {
		opts.OnFeed = func(page models.Page, state models.FeedState) {
			r.opts.OnFeed(clientID, page, state)
		}
	}

	sessions := NewSessionManager(storage.NewBucket(r.store, clientID))
	restored, err := sessions.Restore(context.WithoutCancel(ctx))
	ctrl := NewController(r.api, sessions, opts)
	if err != nil {
		r.l.Error("failed to restore session", "client", shortID(clientID), "err", err)
		return ctrl
	}
	if restored {
		r.l.Debug("restored session", "client", shortID(clientID))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cl, ok := r.clients[clientID]; ok {
		cl.lastActivity = r.now()
		return cl.ctrl
	}
	r.clients[clientID] = &clientEntry{ctrl: ctrl, lastActivity: r.now()}
	return ctrl
}

func (r *Registry) touch(clientID string) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cl, ok := r.clients[clientID]
	if !ok {
		return nil, false
	}
	cl.lastActivity = r.now()
	return cl.ctrl, true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
