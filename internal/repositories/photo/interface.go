package photo

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/KirkDiggler/holidayhub/internal/repositories/photo Store

import (
	"context"
)

// Store is object storage for contest photos
type Store interface {
	// Upload stores the bytes under bucket/key, replacing any previous object
	Upload(ctx context.Context, input *UploadInput) error

	// PublicURL returns the URL the gateway serves the object at
	PublicURL(bucket, key string) string

	// Get retrieves a stored object
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
}
