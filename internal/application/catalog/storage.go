package catalog

import "context"

// ImageStorage abstracts the blob store that keeps product images.
// Implementations live in the infrastructure layer (S3 or a stub).
type ImageStorage interface {
	// Store uploads the object under key and returns its public URL.
	Store(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Delete removes the object under key. Deleting an absent object
	// is not an error.
	Delete(ctx context.Context, key string) error
}
