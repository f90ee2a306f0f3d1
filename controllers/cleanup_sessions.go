package controllers

import (
	"context"
	"time"
)

// EvictIdle drops controllers idle for longer than maxIdle and returns how
// many were dropped.
func (r *Registry) EvictIdle(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	evicted := 0
	for id, cl := range r.clients {
		if now.Sub(cl.lastActivity) > maxIdle {
			delete(r.clients, id)
			evicted++
			r.l.Debug("evicted idle client", "client", shortID(id), "idle", now.Sub(cl.lastActivity))
		}
	}
	return evicted
}

// StartPeriodicCleanup evicts idle controllers every interval until ctx is
// done.
func (r *Registry) StartPeriodicCleanup(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.EvictIdle(maxIdle); n > 0 {
					r.l.Info("cleaned up idle clients", "count", n, "remaining", r.Len())
				}
			}
		}
	}()
}
