package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-rental/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal     prometheus.Counter     `name:"rate_limit_exceeded_total"`
	StorageRetriesTotal        prometheus.Counter     `name:"storage_retries_total"`
	UniquenessConflictsTotal   *prometheus.CounterVec `name:"uniqueness_conflicts_total"`
	LicenseImagesAttachedTotal *prometheus.CounterVec `name:"license_images_attached_total"`
	MotoNotificationsTotal     prometheus.Counter     `name:"moto_notifications_total"`
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, provideMetrics)
}

// provideMetrics registers the application collectors with the default
// registerer. Collectors registered by an earlier container are reused.
func provideMetrics() (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceededTotal, err = register("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return out, err
	}
	if out.StorageRetriesTotal, err = register("storage_retries_total", metrics.NewStorageRetriesTotal()); err != nil {
		return out, err
	}
	if out.UniquenessConflictsTotal, err = register("uniqueness_conflicts_total", metrics.NewUniquenessConflictsTotal()); err != nil {
		return out, err
	}
	if out.LicenseImagesAttachedTotal, err = register("license_images_attached_total", metrics.NewLicenseImagesAttachedTotal()); err != nil {
		return out, err
	}
	if out.MotoNotificationsTotal, err = register("moto_notifications_total", metrics.NewMotoNotificationsTotal()); err != nil {
		return out, err
	}
	return out, nil
}

func register[T prometheus.Collector](name string, c T) (T, error) {
	err := prometheus.DefaultRegisterer.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
		return c, fmt.Errorf("register %s: existing collector is %T", name, are.ExistingCollector)
	}
	return c, fmt.Errorf("register %s: %w", name, err)
}
