package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	gcs "cloud.google.com/go/storage"
)

// GCSSource implements Source using Google Cloud Storage.
type GCSSource struct {
	client *gcs.Client
	bucket string
}

// NewGCSSource creates a GCS-backed Source for one bucket.
// It uses Application Default Credentials.
func NewGCSSource(ctx context.Context, bucket string) (*GCSSource, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSSource{client: client, bucket: bucket}, nil
}

// Fetch downloads the object at key. A missing object is reported as
// fs.ErrNotExist.
func (s *GCSSource) Fetch(ctx context.Context, key string) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, fmt.Errorf("gs://%s/%s: %w", s.bucket, key, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("gcs read %s: %w", key, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Close releases the underlying client.
func (s *GCSSource) Close() error {
	return s.client.Close()
}
