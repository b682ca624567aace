package blob

import (
	"context"
	"io"
)

// Store uploads binary objects and returns publicly addressable URLs.
type Store interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}
