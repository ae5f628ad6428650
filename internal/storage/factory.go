package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	// DriverFilesystem selects local disk storage. It is the default.
	DriverFilesystem = "filesystem"
	// DriverMinIO selects the MinIO backend.
	DriverMinIO = "minio"
	// DriverS3 selects the AWS S3 backend.
	DriverS3 = "s3"
	// DriverGCS selects the Google Cloud Storage backend.
	DriverGCS = "gcs"
)

// ErrUnknownDriver indicates an unsupported storage driver.
var ErrUnknownDriver = errors.New("storage: unknown driver")

// Options groups configuration for every driver.
type Options struct {
	BasePath string
	MinIO    MinIOOptions
	S3       S3Options
	GCS      GCSOptions
}

// NewFromDriver constructs a Storage by driver name. An empty name selects
// the filesystem driver.
func NewFromDriver(ctx context.Context, driver string, opts Options) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverFilesystem:
		return NewFilesystem(opts.BasePath)
	case DriverMinIO:
		return NewMinIO(opts.MinIO)
	case DriverS3:
		return NewS3(ctx, opts.S3)
	case DriverGCS:
		return NewGCS(ctx, opts.GCS)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
