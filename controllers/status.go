package controllers

import (
	"time"

	"mememage-web/helpers"
)

// Stats counts the controllers held in memory. Clients quiet for longer than
// idleThreshold count as idle; near_timeout are those within two minutes of
// eviction at maxIdle.
func (r *Registry) Stats(idleThreshold, maxIdle time.Duration) map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := map[string]any{
		"total":          len(r.clients),
		"active":         0,
		"idle":           0,
		"near_timeout":   0,
		"idle_threshold": idleThreshold.String(),
		"max_idle_time":  maxIdle.String(),
	}

	now := r.now()
	nearTimeoutThreshold := maxIdle - 2*time.Minute

	for _, cl := range r.clients {
		switch helpers.ActivityStatus(cl.lastActivity, now, idleThreshold) {
		case helpers.StatusIdle:
			stats["idle"] = stats["idle"].(int) + 1
			if now.Sub(cl.lastActivity) > nearTimeoutThreshold {
				stats["near_timeout"] = stats["near_timeout"].(int) + 1
			}
		default:
			stats["active"] = stats["active"].(int) + 1
		}
	}
	return stats
}
