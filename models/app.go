package models

import "time"

const (
	DefaultPort            = 3000
	DefaultAPIBaseURL      = "http://localhost:8080/api"
	DefaultAPITimeout      = 10 * time.Second
	DefaultFeedLimit       = 20
	DefaultStorageDriver   = "file"
	DefaultStoragePath     = ".mememage/storage.json"
	ClientCookie           = "client_id"
	ClientCookieMaxAge     = 365 * 24 * time.Hour
	DefaultIdleTimeout     = 30 * time.Minute // evict in-memory controllers after N minutes without a request
	DefaultCleanupInterval = time.Minute
	IdleThreshold          = 5 * time.Minute
	ClientIDBytes          = 16
)

// Keys under which a client's session is persisted.
const (
	TokenKey = "authToken"
	UserKey  = "userData"
)

var DefaultTemplates = []string{"drake", "distracted-boyfriend", "two-buttons", "change-my-mind"}

const NetworkErrorMessage = "Network error. Please try again."
