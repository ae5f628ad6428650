package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores settings shared by the API, worker and migrate binaries.
type Config struct {
	Port             int
	DB               DB
	Storage          Storage
	Kafka            Kafka
	RateLimit        RateLimit
	Admin            Admin
	OperationTimeout time.Duration
	LogLevel         string
	NotifyYear       int
}

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres:// connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Storage stores blob storage settings. Bucket and Prefix apply to the
// object store drivers.
type Storage struct {
	Driver        string
	BasePath      string
	MaxUploadSize int64
	Bucket        string
	Prefix        string
	MinIO         MinIO
	S3            S3
	Retry         StorageRetry
}

// MinIO stores MinIO client settings.
type MinIO struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// S3 stores AWS S3 client settings. Empty credentials fall back to the
// default AWS credential chain.
type S3 struct {
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

// StorageRetry configures retries of transient storage failures.
type StorageRetry struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Kafka stores broker settings. An empty Brokers list disables messaging.
type Kafka struct {
	Brokers   []string
	MotoTopic string
	GroupID   string
}

// Enabled reports whether brokers are configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// RateLimit configures the per-client HTTP rate limiter.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Admin configures the metrics and pprof listener. An empty Addr disables it.
type Admin struct {
	Addr string
	User string
	Pass string
}

// Load reads configuration in order: .env (if present), environment, flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	flags := pflag.CommandLine
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&cfg.Admin.Addr, "admin-addr", cfg.Admin.Addr, "metrics and pprof listen address, empty disables")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	var (
		e   env
		cfg = &Config{
			DB:        defaultDB,
			Storage:   defaultStorage,
			Kafka:     defaultKafka,
			RateLimit: defaultRateLimit,
		}
	)

	cfg.Port = e.int("PORT", defaultPort)
	cfg.OperationTimeout = e.duration("OPERATION_TIMEOUT", defaultOperationTimeout)
	cfg.LogLevel = e.str("LOG_LEVEL", defaultLogLevel)
	cfg.NotifyYear = e.int("NOTIFY_YEAR", defaultNotifyYear)

	cfg.DB.Host = e.str("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = e.str("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = e.str("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = e.str("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = e.str("POSTGRES_DB", cfg.DB.Name)

	st := &cfg.Storage
	st.Driver = strings.ToLower(e.str("STORAGE_DRIVER", st.Driver))
	st.BasePath = e.str("STORAGE_BASE_PATH", st.BasePath)
	st.MaxUploadSize = e.size("STORAGE_MAX_UPLOAD_SIZE", defaultMaxUploadSize)
	st.Bucket = e.str("STORAGE_BUCKET", st.Bucket)
	st.Prefix = e.str("STORAGE_PREFIX", st.Prefix)
	st.MinIO = MinIO{
		Endpoint:  e.str("MINIO_ENDPOINT", ""),
		AccessKey: e.str("MINIO_ACCESS_KEY", ""),
		SecretKey: e.str("MINIO_SECRET_KEY", ""),
		Region:    e.str("MINIO_REGION", ""),
		UseSSL:    e.bool("MINIO_USE_SSL", false),
	}
	st.S3 = S3{
		Region:       e.str("S3_REGION", ""),
		Endpoint:     e.str("S3_ENDPOINT", ""),
		AccessKey:    e.str("S3_ACCESS_KEY", ""),
		SecretKey:    e.str("S3_SECRET_KEY", ""),
		UsePathStyle: e.bool("S3_USE_PATH_STYLE", false),
	}
	st.Retry.MaxAttempts = e.int("STORAGE_RETRY_MAX_ATTEMPTS", st.Retry.MaxAttempts)
	st.Retry.BaseDelay = e.duration("STORAGE_RETRY_BASE_DELAY", st.Retry.BaseDelay)
	st.Retry.MaxDelay = e.duration("STORAGE_RETRY_MAX_DELAY", st.Retry.MaxDelay)

	cfg.Kafka.Brokers = e.list("KAFKA_BROKERS")
	cfg.Kafka.MotoTopic = e.str("KAFKA_MOTO_TOPIC", cfg.Kafka.MotoTopic)
	cfg.Kafka.GroupID = e.str("KAFKA_GROUP_ID", cfg.Kafka.GroupID)

	rl := &cfg.RateLimit
	rl.Enabled = e.bool("RATE_LIMIT_ENABLED", rl.Enabled)
	rl.Rate = e.float("RATE_LIMIT_RATE", rl.Rate)
	rl.Burst = e.int("RATE_LIMIT_BURST", rl.Burst)
	rl.TTL = e.duration("RATE_LIMIT_TTL", rl.TTL)
	rl.MaxBuckets = e.int("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets)

	cfg.Admin = Admin{
		Addr: e.str("ADMIN_ADDR", ""),
		User: e.str("ADMIN_USER", ""),
		Pass: e.str("ADMIN_PASSWORD", ""),
	}

	if e.err != nil {
		return nil, e.err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if p, err := strconv.Atoi(c.DB.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid POSTGRES_PORT: %q", c.DB.Port)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("OPERATION_TIMEOUT must be positive")
	}
	if c.Storage.MaxUploadSize <= 0 {
		return fmt.Errorf("STORAGE_MAX_UPLOAD_SIZE must be positive")
	}
	switch c.Storage.Driver {
	case "filesystem":
		if c.Storage.BasePath == "" {
			return fmt.Errorf("STORAGE_BASE_PATH required for filesystem driver")
		}
	case "minio", "s3", "gcs":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("STORAGE_BUCKET required for %s driver", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER: %q", c.Storage.Driver)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate limit requires positive RATE_LIMIT_RATE and RATE_LIMIT_BURST")
	}
	if c.Kafka.Enabled() && c.Kafka.MotoTopic == "" {
		return fmt.Errorf("KAFKA_MOTO_TOPIC required when KAFKA_BROKERS is set")
	}
	return nil
}

// env reads typed variables and keeps the first parse error.
type env struct{ err error }

func (e *env) lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (e *env) fail(key, v string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
}

func (e *env) str(key, def string) string {
	if v, ok := e.lookup(key); ok {
		return v
	}
	return def
}

func (e *env) int(key string, def int) int {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return n
}

func (e *env) float(key string, def float64) float64 {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return f
}

func (e *env) bool(key string, def bool) bool {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return b
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return d
}

// size parses human readable sizes such as "10MB" or "500k".
func (e *env) size(key, def string) int64 {
	v, ok := e.lookup(key)
	if !ok {
		v = def
	}
	n, err := units.FromHumanSize(v)
	if err != nil {
		e.fail(key, v, err)
		return 0
	}
	return n
}

func (e *env) list(key string) []string {
	v, ok := e.lookup(key)
	if !ok {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
