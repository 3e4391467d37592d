package handlers

import (
	"context"
	"time"

	"github.com/mreyes/gearvault-backend/internal/config"
	"github.com/mreyes/gearvault-backend/internal/services"
)

var (
	jwtSecret string
	blobStore services.BlobStore
)

// Init wires the handler package's collaborators. Must run before any route
// is served.
func Init(cfg *config.Config, store services.BlobStore) {
	jwtSecret = cfg.JWTSecret
	blobStore = store
}

// dbContext bounds a single datastore operation chain.
func dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
