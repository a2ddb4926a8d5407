package service

import (
	"context"
	"io"
)

// MediaUpload carries a single file destined for object storage.
type MediaUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// MediaStorage defines the interface for persisting uploaded media files.
// Implementations return a publicly reachable URL for each stored object.
type MediaStorage interface {
	// Upload stores the file and returns its public URL.
	Upload(ctx context.Context, upload MediaUpload) (string, error)
}
