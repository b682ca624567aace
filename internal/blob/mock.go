package blob

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
type MockStore struct {
	mu sync.Mutex

	UploadFunc func(ctx context.Context, key string, body io.Reader, contentType string) (string, error)

	UploadCalls []struct {
		Key         string
		ContentType string
		Body        []byte
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	data, _ := io.ReadAll(body)
	m.mu.Lock()
	m.UploadCalls = append(m.UploadCalls, struct {
		Key         string
		ContentType string
		Body        []byte
	}{key, contentType, data})
	m.mu.Unlock()
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, bytes.NewReader(data), contentType)
	}
	return "https://blobs.test/" + key, nil
}
