// Command service-rental serves the courier and moto REST API.
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

	container := app.MustBuildContainer(ctx)
	app.NewRunner().MustRun(container)
}
