package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-rental/internal/config"
	"service-rental/internal/http/adminserver"
	"service-rental/internal/http/handlers"
	"service-rental/internal/http/middleware/ratelimit"
	"service-rental/internal/http/router"
	"service-rental/internal/logx"
	"service-rental/internal/service/courier"
	"service-rental/internal/service/licenseimage"
	"service-rental/internal/service/moto"
)

type routerIn struct {
	dig.In

	Logger        logx.Logger
	Base          *handlers.System
	Couriers      *handlers.CourierHandler
	Motos         *handlers.MotoHandler
	LicenseImages *handlers.LicenseImageHandler
	RateLimit     *ratelimit.Middleware
}

// probePaths are never throttled.
var probePaths = []string{"/ping", "/healthcheck"}

type rateLimitIn struct {
	dig.In

	Config   *config.Config
	Logger   logx.Logger
	Exceeded prometheus.Counter `name:"rate_limit_exceeded_total"`
	Clock    ratelimit.Clock    `optional:"true"`
}

// newRateLimit admits everything unless RATE_LIMIT_ENABLED is set.
func newRateLimit(in rateLimitIn) *ratelimit.Middleware {
	var limiter ratelimit.Limiter = ratelimit.NopLimiter{}
	if rl := in.Config.RateLimit; rl.Enabled {
		limiter = ratelimit.NewTokenBuckets(ratelimit.Config{
			Rate:       rl.Rate,
			Burst:      rl.Burst,
			TTL:        rl.TTL,
			MaxBuckets: rl.MaxBuckets,
		}, in.Clock)
	}
	return ratelimit.New(in.Logger, in.Exceeded, limiter, probePaths...)
}

type adminServerOut struct {
	dig.Out

	Server *http.Server `name:"admin_server"`
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Params{
		Logger:        in.Logger,
		Base:          in.Base,
		Couriers:      in.Couriers,
		Motos:         in.Motos,
		LicenseImages: in.LicenseImages,
		RateLimit:     in.RateLimit.Handler(),
	})
}

func newServer(cfg *config.Config, mux http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// newAdminServer returns a nil server when ADMIN_ADDR is empty.
func newAdminServer(cfg *config.Config) adminServerOut {
	if cfg.Admin.Addr == "" {
		return adminServerOut{}
	}
	return adminServerOut{Server: &http.Server{
		Addr:              cfg.Admin.Addr,
		Handler:           adminserver.Handler(adminserver.Config{User: cfg.Admin.User, Pass: cfg.Admin.Pass}, nil),
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

func registerAdmin(container *dig.Container) error {
	return provideAll(container, newAdminServer)
}

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.NewSystem,
		func(logger logx.Logger, s *courier.Service) *handlers.CourierHandler {
			return handlers.NewCourierHandler(logger, s)
		},
		func(logger logx.Logger, s *moto.Service) *handlers.MotoHandler {
			return handlers.NewMotoHandler(logger, s)
		},
		func(cfg *config.Config, logger logx.Logger, s *licenseimage.Service) *handlers.LicenseImageHandler {
			return handlers.NewLicenseImageHandler(logger, s, cfg.Storage.MaxUploadSize)
		},
		newRateLimit,
		newRouter,
		newServer,
		newAdminServer,
	)
}
