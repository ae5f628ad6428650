package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewStorageRetriesTotal returns a Prometheus counter for the number of retried blob storage writes
func NewStorageRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storage_retries_total",
		Help: "Total number of retry attempts performed by blob storage writes",
	})
}

// NewUniquenessConflictsTotal counts rejected writes per entity, field and detection stage
// (precheck or index).
func NewUniquenessConflictsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "uniqueness_conflicts_total",
		Help: "Total number of uniqueness conflicts by entity, field and stage",
	}, []string{"entity", "field", "stage"})
}

// NewLicenseImagesAttachedTotal counts stored license images by file extension.
func NewLicenseImagesAttachedTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "license_images_attached_total",
		Help: "Total number of courier license images stored",
	}, []string{"ext"})
}

// NewMotoNotificationsTotal counts notifications recorded by the worker.
func NewMotoNotificationsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "moto_notifications_total",
		Help: "Total number of moto notifications recorded",
	})
}
