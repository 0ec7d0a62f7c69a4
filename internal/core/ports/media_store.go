package ports

import (
	"context"
	"io"
)

// MediaStore keeps user-uploaded files.
type MediaStore interface {
	// Save stores body and returns its key.
	Save(ctx context.Context, filename, contentType string, body io.ReadSeeker) (string, error)
	// URL returns a browser-reachable URL for key.
	URL(ctx context.Context, key string) (string, error)
}
