package policies

import (
	"context"
	"io"
)

// ImageStore persists binary image content and returns a public URL.
type ImageStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
}
