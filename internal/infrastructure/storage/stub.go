package storage

import (
	"context"
	"errors"

	catalogapp "github.com/shopx/backend/internal/application/catalog"
)

var _ catalogapp.ImageStorage = (*StubImageStorage)(nil)

// StubImageStorage is a placeholder image store for development and
// tests. It records nothing and fabricates stable URLs.
type StubImageStorage struct {
	// BaseURL is prepended to stored keys
	BaseURL string
}

// NewStubImageStorage creates a new StubImageStorage
func NewStubImageStorage() *StubImageStorage {
	return &StubImageStorage{
		BaseURL: "https://storage.example.com",
	}
}

// Store pretends to upload and returns a fabricated URL
func (s *StubImageStorage) Store(_ context.Context, key string, _ []byte, _ string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	return s.BaseURL + "/" + key, nil
}

// Delete is a no-op stub that always succeeds
func (s *StubImageStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	return nil
}
