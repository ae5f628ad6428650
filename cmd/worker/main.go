// Command worker consumes moto.registered events and records notifications
// for motos of the configured year.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"service-rental/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.NewWorkerRunner().MustRun(app.MustBuildWorkerContainer(ctx))
}
