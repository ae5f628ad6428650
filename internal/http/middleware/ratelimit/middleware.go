package ratelimit

import (
	"net"
	"net/http"
	"net/netip"

	"github.com/prometheus/client_golang/prometheus"

	"service-rental/internal/logx"
)

// rejectBody matches the error envelope written by the API handlers.
const rejectBody = `{"error":"too many requests"}`

// Middleware throttles requests by client address.
type Middleware struct {
	logger   logx.Logger
	rejected prometheus.Counter
	limiter  Limiter
	skip     map[string]bool
}

// New builds a Middleware. A nil limiter admits everything, a nil counter
// is not incremented, and paths in exempt bypass the limiter entirely.
func New(logger logx.Logger, rejected prometheus.Counter, limiter Limiter, exempt ...string) *Middleware {
	if limiter == nil {
		limiter = NopLimiter{}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	skip := make(map[string]bool, len(exempt))
	for _, p := range exempt {
		skip[p] = true
	}
	return &Middleware{logger: logger, rejected: rejected, limiter: limiter, skip: skip}
}

// Handler wraps next.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.skip[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			key := clientKey(r.RemoteAddr)
			if !m.limiter.Allow(key) {
				m.reject(w, r, key)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) reject(w http.ResponseWriter, r *http.Request, key string) {
	if m.rejected != nil {
		m.rejected.Inc()
	}
	m.logger.Warn("rate limit exceeded",
		logx.String("client", key),
		logx.String("method", r.Method),
		logx.String("path", r.URL.Path),
	)

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)
	if _, err := w.Write([]byte(rejectBody)); err != nil {
		m.logger.Debug("rate limit body not written", logx.Err(err))
	}
}

// clientKey reduces RemoteAddr to a canonical IP. chi's RealIP runs earlier
// in the chain, so proxied requests already carry the forwarded address.
// Anything unparsable is used verbatim.
func clientKey(remoteAddr string) string {
	if remoteAddr == "" {
		return "unknown"
	}
	if ap, err := netip.ParseAddrPort(remoteAddr); err == nil {
		return ap.Addr().Unmap().String()
	}
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil && host != "" {
		return host
	}
	if a, err := netip.ParseAddr(remoteAddr); err == nil {
		return a.Unmap().String()
	}
	return remoteAddr
}
