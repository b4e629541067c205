package storage

import (
	"context"
	"io"
)

// Uploader writes a binary object to the attachments bucket and returns its
// public URL. The object must be durably stored before Upload returns.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (publicURL string, err error)
}
