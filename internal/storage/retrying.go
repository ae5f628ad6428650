package storage

import (
	"context"
	"errors"
	"time"

	"service-rental/internal/logx"
)

type counter interface {
	Inc()
}

// RetryConfig describes how RetryingStorage retries failed writes.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingStorage retries transient Put failures with exponential backoff.
type RetryingStorage struct {
	next    Storage
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	sleep   func(context.Context, time.Duration) bool
}

// NewRetryingStorage wraps next. It returns nil if next is nil.
func NewRetryingStorage(next Storage, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingStorage {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryingStorage{next: next, logger: logger, retries: retries, cfg: cfg, sleep: sleepWithContext}
}

// Put calls the wrapped storage until it succeeds, the error is permanent or
// attempts run out.
func (s *RetryingStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		loc, err := s.next.Put(ctx, key, data, contentType)
		if err == nil {
			return loc, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == s.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(s.cfg.BaseDelay, s.cfg.MaxDelay, attempt)
		if s.retries != nil {
			s.retries.Inc()
		}
		s.logger.Warn("storage retry",
			logx.String("key", key),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !s.sleep(ctx, delay) {
			break
		}
	}
	return "", lastErr
}

// Close closes the wrapped storage.
func (s *RetryingStorage) Close() error { return s.next.Close() }

func isRetryable(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidKey),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	default:
		return true
	}
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
