package mocks

import (
	"context"
	"fmt"
	"io"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// MockObjectStorage implements domain.ObjectStorage for testing
type MockObjectStorage struct {
	UploadImageFunc  func(ctx context.Context, folder string, r io.Reader, size int64, contentType string) (string, error)
	UploadMediaFunc  func(ctx context.Context, folder string, r io.Reader, size int64, contentType string) (string, error)
	RemoveFunc       func(ctx context.Context, key string) error
	PresignedURLFunc func(ctx context.Context, key string) (string, error)

	uploads int
}

// NewMockObjectStorage creates a new MockObjectStorage with default behaviors
func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{}
}

func (m *MockObjectStorage) UploadImage(ctx context.Context, folder string, r io.Reader, size int64, contentType string) (string, error) {
	if m.UploadImageFunc != nil {
		return m.UploadImageFunc(ctx, folder, r, size, contentType)
	}
	m.uploads++
	return fmt.Sprintf("%s/object-%d", folder, m.uploads), nil
}

func (m *MockObjectStorage) UploadMedia(ctx context.Context, folder string, r io.Reader, size int64, contentType string) (string, error) {
	if m.UploadMediaFunc != nil {
		return m.UploadMediaFunc(ctx, folder, r, size, contentType)
	}
	m.uploads++
	return fmt.Sprintf("%s/object-%d", folder, m.uploads), nil
}

func (m *MockObjectStorage) Remove(ctx context.Context, key string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, key)
	}
	return nil
}

func (m *MockObjectStorage) PresignedURL(ctx context.Context, key string) (string, error) {
	if m.PresignedURLFunc != nil {
		return m.PresignedURLFunc(ctx, key)
	}
	return "https://storage.local/" + key, nil
}

// Compile-time interface compliance verification
var _ domain.ObjectStorage = (*MockObjectStorage)(nil)
