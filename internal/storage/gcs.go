package storage

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
)

// GCSOptions configures the Google Cloud Storage backend. Credentials come
// from the environment (GOOGLE_APPLICATION_CREDENTIALS) unless Client is set.
type GCSOptions struct {
	Client *gcs.Client
	Bucket string
	Prefix string
}

// GCS stores objects in a Google Cloud Storage bucket.
type GCS struct {
	client *gcs.Client
	bucket string
	prefix string
}

// NewGCS constructs a GCS backend.
func NewGCS(ctx context.Context, opts GCSOptions) (*GCS, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("gcs bucket required")
	}
	client := opts.Client
	if client == nil {
		created, err := gcs.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("gcs client: %w", err)
		}
		client = created
	}
	return &GCS{client: client, bucket: opts.Bucket, prefix: opts.Prefix}, nil
}

// Put uploads data and returns "bucket/object".
func (g *GCS) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	name, err := objectKey(g.prefix, key)
	if err != nil {
		return "", err
	}
	w := g.client.Bucket(g.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s: %w", name, err)
	}
	return g.bucket + "/" + name, nil
}

// Close closes the GCS client.
func (g *GCS) Close() error { return g.client.Close() }
