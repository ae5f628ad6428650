package handlers

import (
	"net/http"

	"service-rental/internal/logx"
)

// System serves the liveness probes and the router fallbacks.
type System struct {
	logger logx.Logger
}

func NewSystem(logger logx.Logger) *System {
	return &System{logger: orNop(logger)}
}

// Ping answers {"message":"pong"}.
func (s *System) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(s.logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead answers HEAD /healthcheck with an empty 204.
func (s *System) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *System) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(s.logger, w, r, http.StatusNotFound, "route not found")
}

func (s *System) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(s.logger, w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func orNop(l logx.Logger) logx.Logger {
	if l == nil {
		return logx.Nop()
	}
	return l
}
