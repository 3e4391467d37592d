package services

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/mreyes/gearvault-backend/internal/config"
)

// BlobStore is the object storage boundary. Implementations upload the bytes
// under the given key and return a publicly resolvable URL.
type BlobStore interface {
	Upload(ctx context.Context, r io.Reader, key, contentType string) (string, error)
}

// ObjectKey builds the storage key for a gear image, namespaced by owner and
// gear so uploads from different users can never collide.
func ObjectKey(userID, gearID, filename string) string {
	return fmt.Sprintf("gear-images/%s/%s/%s-%s", userID, gearID, uuid.New(), filename)
}

// NewBlobStore picks the configured storage backend.
func NewBlobStore(cfg *config.Config) (BlobStore, error) {
	switch cfg.StorageProvider {
	case "cloudinary":
		return NewCloudinaryStore(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	case "s3":
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.StorageProvider)
	}
}
