package storage

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSUploader stores CV documents in a Google Cloud Storage bucket and hands
// back a durable public link for the application row.
type GCSUploader struct {
	client *gcs.Client
	bucket string
}

func NewGCSUploader(ctx context.Context, bucket string) (*GCSUploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage: bucket name is empty")
	}
	c, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: create gcs client: %w", err)
	}
	return &GCSUploader{client: c, bucket: bucket}, nil
}

func (u *GCSUploader) Close() error { return u.client.Close() }

// Upload writes one CV object and marks it world-readable. CVs are capped at
// a few megabytes, so chunked resumable uploads are disabled and the object
// goes up in a single request.
func (u *GCSUploader) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	if objectName == "" {
		return "", fmt.Errorf("storage: object name is empty")
	}

	obj := u.client.Bucket(u.bucket).Object(objectName)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	w.ChunkSize = 0

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("storage: write %s: %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", objectName, err)
	}

	// application rows embed the link and readers carry no credentials
	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", fmt.Errorf("storage: publish %s: %w", objectName, err)
	}

	return u.publicURL(objectName), nil
}

// publicURL is the unauthenticated form for an object in the bucket.
func (u *GCSUploader) publicURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, objectName)
}
