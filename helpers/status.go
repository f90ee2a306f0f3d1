package helpers

import "time"

const (
	StatusActive = "active"
	StatusIdle   = "idle"
)

// ActivityStatus classifies a client by the time since its last request.
func ActivityStatus(lastActivity, now time.Time, idleThreshold time.Duration) string {
	if now.Sub(lastActivity) > idleThreshold {
		return StatusIdle
	}
	return StatusActive
}
