package app

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"service-rental/internal/logx"
	"service-rental/internal/transport/kafka"
)

// WorkerRunner runs the moto notification consumer.
type WorkerRunner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewWorkerRunner returns a WorkerRunner that consumes until the container
// context is done.
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker, exit: os.Exit}
}

// MustRun treats cancellation as a clean stop. Any other error is logged
// and the process exits with status 1.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	loggerFrom(container).Error("worker stopped", logx.Err(err))
	if r.exit != nil {
		r.exit(1)
	}
}

type workerIn struct {
	dig.In

	Ctx      context.Context
	Pool     *pgxpool.Pool
	Logger   logx.Logger
	Consumer *kafka.Consumer
	Admin    *http.Server `name:"admin_server" optional:"true"`
}

// errNoConsumer means KAFKA_BROKERS was empty, so no consumer was built.
var errNoConsumer = errors.New("kafka consumer is nil: set KAFKA_BROKERS for the worker")

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(in workerIn) error {
	if in.Consumer == nil {
		return errNoConsumer
	}
	defer closeWorker(in)

	errCh := make(chan error, 1)
	startServer(in.Admin, in.Logger, "admin", errCh)

	in.Logger.Info("service-rental-worker started")
	err := in.Consumer.Run(in.Ctx)
	gracefulShutdown(in.Admin, in.Logger, shutdownTimeout)
	return err
}

func closeWorker(in workerIn) {
	if err := in.Consumer.Close(); err != nil {
		in.Logger.Error("kafka close error", logx.Err(err))
	}
	if in.Pool != nil {
		in.Pool.Close()
	}
}
