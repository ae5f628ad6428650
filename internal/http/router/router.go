package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"service-rental/internal/http/handlers"
	obs "service-rental/internal/http/middleware"
	"service-rental/internal/logx"
)

const defaultTimeout = 5 * time.Second

// Params bundles everything mounted by New. Nil resource handlers leave
// their routes unregistered.
type Params struct {
	Logger        logx.Logger
	Base          *handlers.System
	Couriers      *handlers.CourierHandler
	Motos         *handlers.MotoHandler
	LicenseImages *handlers.LicenseImageHandler
	// RateLimit runs after request id and real ip resolution.
	RateLimit func(http.Handler) http.Handler
	Timeout   time.Duration
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(p Params) http.Handler {
	logger := p.Logger
	if logger == nil {
		logger = logx.Nop()
	}
	base := p.Base
	if base == nil {
		base = handlers.NewSystem(logger)
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(obs.Observability(logger))
	r.Use(middleware.Recoverer)
	if p.RateLimit != nil {
		r.Use(p.RateLimit)
	}
	r.Use(middleware.Timeout(timeout))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.NotFound(base.NotFound)
	r.MethodNotAllowed(base.MethodNotAllowed)

	if p.Couriers != nil || p.LicenseImages != nil {
		r.Route("/couriers", func(r chi.Router) {
			if c := p.Couriers; c != nil {
				r.Post("/", c.Create)
				r.Get("/{id}", c.GetByID)
			}
			if li := p.LicenseImages; li != nil {
				r.Post("/{id}/license-image", li.Upload)
				r.Post("/{id}/cnh", li.Upload)
			}
		})
	}

	if m := p.Motos; m != nil {
		r.Route("/motos", func(r chi.Router) {
			r.Post("/", m.Create)
			r.Get("/", m.List)
			r.Get("/{id}", m.GetByID)
			r.Delete("/{id}", m.Delete)
			r.Put("/{id}/plate", m.UpdatePlate)
			r.Put("/{id}/placa", m.UpdatePlate)
		})
	}

	return r
}
