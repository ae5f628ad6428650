package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-rental/internal/config"
	"service-rental/internal/logx"
	"service-rental/internal/storage"
)

var newStorage = storage.NewFromDriver

type storageIn struct {
	dig.In

	Ctx     context.Context
	Cfg     *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"storage_retries_total"`
}

func registerStorage(container *dig.Container) error {
	return provideAll(container, provideStorage)
}

func storageOptions(st config.Storage) storage.Options {
	return storage.Options{
		BasePath: st.BasePath,
		MinIO: storage.MinIOOptions{
			Endpoint:  st.MinIO.Endpoint,
			AccessKey: st.MinIO.AccessKey,
			SecretKey: st.MinIO.SecretKey,
			Region:    st.MinIO.Region,
			UseSSL:    st.MinIO.UseSSL,
			Bucket:    st.Bucket,
			Prefix:    st.Prefix,
		},
		S3: storage.S3Options{
			Region:       st.S3.Region,
			Endpoint:     st.S3.Endpoint,
			AccessKey:    st.S3.AccessKey,
			SecretKey:    st.S3.SecretKey,
			UsePathStyle: st.S3.UsePathStyle,
			Bucket:       st.Bucket,
			Prefix:       st.Prefix,
		},
		GCS: storage.GCSOptions{
			Bucket: st.Bucket,
			Prefix: st.Prefix,
		},
	}
}

func provideStorage(in storageIn) (storage.Storage, error) {
	st := in.Cfg.Storage
	backend, err := newStorage(in.Ctx, st.Driver, storageOptions(st))
	if err != nil {
		return nil, fmt.Errorf("storage driver %q: %w", st.Driver, err)
	}
	in.Logger.Info("blob storage ready", logx.String("driver", st.Driver))

	return storage.NewRetryingStorage(backend, in.Logger, in.Retries, storage.RetryConfig{
		MaxAttempts: st.Retry.MaxAttempts,
		BaseDelay:   st.Retry.BaseDelay,
		MaxDelay:    st.Retry.MaxDelay,
	}), nil
}
