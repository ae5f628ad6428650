// Command migrate applies the embedded SQL migrations to the configured
// PostgreSQL database.
package main

import (
	"errors"
	"os"

	"github.com/spf13/pflag"

	"service-rental/internal/app"
	"service-rental/internal/config"
	"service-rental/internal/logx"
	"service-rental/migrations"
)

func main() {
	down := pflag.Bool("down", false, "roll back every applied migration")
	steps := pflag.Int("steps", 0, "apply n migrations forward, or -n backward")
	version := pflag.Bool("version", false, "print the current schema version and exit")

	cfg, err := config.Load()
	if err != nil {
		app.NewLogger("info").Error("config load error", logx.Err(err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.LogLevel)

	if err := migrate(logger, cfg.DB.DSN(), *down, *steps, *version); err != nil {
		logger.Error("migration failed", logx.Err(err))
		os.Exit(1)
	}
}

func migrate(logger logx.Logger, dsn string, down bool, steps int, version bool) error {
	switch {
	case version:
		v, dirty, err := migrations.Version(dsn)
		if err != nil {
			return err
		}
		logger.Info("schema version", logx.Int("version", int(v)), logx.Bool("dirty", dirty))
		return nil
	case down && steps != 0:
		return errors.New("--down and --steps are mutually exclusive")
	case down:
		if err := migrations.Down(dsn); err != nil {
			return err
		}
		logger.Info("migrations rolled back")
		return nil
	case steps != 0:
		if err := migrations.Steps(dsn, steps); err != nil {
			return err
		}
		logger.Info("migrations stepped", logx.Int("steps", steps))
		return nil
	default:
		if err := migrations.Up(dsn); err != nil {
			return err
		}
		logger.Info("migrations applied")
		return nil
	}
}
