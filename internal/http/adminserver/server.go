// Package adminserver exposes operational endpoints on a separate listener:
// Prometheus metrics and pprof profiles.
package adminserver

import (
	"crypto/sha256"
	"crypto/subtle"
	"net"
	"net/http"
	"net/http/pprof"
	"net/netip"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds the basic auth credentials required for profiles from
// non-loopback clients. With either field empty only loopback is served.
type Config struct {
	User string
	Pass string
}

var namedProfiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}

// Handler returns the admin mux. A nil g gathers from the default registry.
// /metrics is open; /debug/pprof/ is guarded.
func Handler(cfg Config, g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}

	profiles := http.NewServeMux()
	profiles.HandleFunc("/debug/pprof/", pprof.Index)
	profiles.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	profiles.HandleFunc("/debug/pprof/profile", pprof.Profile)
	profiles.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	profiles.HandleFunc("/debug/pprof/trace", pprof.Trace)
	for _, name := range namedProfiles {
		profiles.Handle("/debug/pprof/"+name, pprof.Handler(name))
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	mux.Handle("/debug/pprof/", newGuard(cfg, profiles))
	return mux
}

type guard struct {
	next     http.Handler
	user     [sha256.Size]byte
	pass     [sha256.Size]byte
	hasCreds bool
}

func newGuard(cfg Config, next http.Handler) *guard {
	return &guard{
		next:     next,
		user:     sha256.Sum256([]byte(cfg.User)),
		pass:     sha256.Sum256([]byte(cfg.Pass)),
		hasCreds: cfg.User != "" && cfg.Pass != "",
	}
}

func (g *guard) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if isLoopback(r.RemoteAddr) || g.authorized(r) {
		g.next.ServeHTTP(w, r)
		return
	}
	w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

// authorized compares digests so the check takes the same time whatever the
// supplied lengths are.
func (g *guard) authorized(r *http.Request) bool {
	if !g.hasCreds {
		return false
	}
	u, p, ok := r.BasicAuth()
	if !ok {
		return false
	}
	gotU := sha256.Sum256([]byte(u))
	gotP := sha256.Sum256([]byte(p))
	userOK := subtle.ConstantTimeCompare(gotU[:], g.user[:])
	passOK := subtle.ConstantTimeCompare(gotP[:], g.pass[:])
	return userOK&passOK == 1
}

func isLoopback(remoteAddr string) bool {
	host := strings.TrimSpace(remoteAddr)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	addr, err := netip.ParseAddr(host)
	return err == nil && addr.Unmap().IsLoopback()
}
