package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-rental/internal/logx"
	"service-rental/internal/repository"
)

const (
	dialAttemptTimeout = 3 * time.Second
	dialMaxBackoff     = 5 * time.Second
)

var newPool = repository.NewPool

// dialPostgres opens the pool, waiting between failed attempts. The wait
// starts at delay and doubles up to dialMaxBackoff, which covers a database
// container that is still booting next to the service.
func dialPostgres(ctx context.Context, logger logx.Logger, dsn string, attempts int, delay time.Duration) (*pgxpool.Pool, error) {
	attempts = max(attempts, 1)
	wait := delay

	var err error
	for n := 1; ; n++ {
		var pool *pgxpool.Pool
		pool, err = dialOnce(ctx, dsn)
		if err == nil {
			logger.Info("db connected", logx.Int("attempt", n))
			return pool, nil
		}
		if n == attempts {
			break
		}

		logger.Warn("db not ready",
			logx.Int("attempt", n),
			logx.Int("of", attempts),
			logx.Duration("next_in", wait),
			logx.Err(err),
		)
		if werr := sleepCtx(ctx, wait); werr != nil {
			return nil, werr
		}
		wait = min(wait*2, dialMaxBackoff)
	}
	return nil, fmt.Errorf("db unreachable after %d attempts: %w", attempts, err)
}

func dialOnce(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, dialAttemptTimeout)
	defer cancel()
	return newPool(ctx, dsn)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
