package config

import "time"

const (
	defaultPort             = 8080
	defaultOperationTimeout = 3 * time.Second
	defaultLogLevel         = "info"
	defaultNotifyYear       = 2024
	defaultMaxUploadSize    = "10MB"
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "test_db",
}

var defaultStorage = Storage{
	Driver:   "filesystem",
	BasePath: "storage/cnh",
	Prefix:   "cnh",
	Retry: StorageRetry{
		MaxAttempts: 3,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    time.Second,
	},
}

var defaultKafka = Kafka{
	MotoTopic: "moto.registered",
	GroupID:   "service-rental-worker",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       20,
	Burst:      40,
	TTL:        5 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultStorage returns the default blob storage settings.
func DefaultStorage() Storage {
	return defaultStorage
}

// DefaultKafka returns the default Kafka settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
