package uniqueness

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"service-rental/internal/apperr"
)

// Detection stages reported in the conflicts counter.
const (
	StagePrecheck = "precheck"
	StageIndex    = "index"
)

// Probe checks whether a candidate value of Field is already taken.
type Probe struct {
	Field  string
	Exists func(ctx context.Context) (bool, error)
}

// Guard enforces uniqueness of business identifiers in two stages: an
// advisory read before the write and the unique index at write time.
type Guard struct {
	conflicts *prometheus.CounterVec
}

// NewGuard returns a Guard. conflicts may be nil.
func NewGuard(conflicts *prometheus.CounterVec) *Guard {
	return &Guard{conflicts: conflicts}
}

// Check runs probes in order and stops at the first taken value.
func (g *Guard) Check(ctx context.Context, entity string, probes ...Probe) error {
	for _, p := range probes {
		taken, err := p.Exists(ctx)
		if err != nil {
			return fmt.Errorf("check %s %s: %w", entity, p.Field, err)
		}
		if taken {
			g.observe(entity, p.Field, StagePrecheck)
			return apperr.Conflict(p.Field)
		}
	}
	return nil
}

// Confirm inspects the result of a write. Conflicts reported by the unique
// index are counted and returned unchanged.
func (g *Guard) Confirm(entity string, err error) error {
	if err == nil {
		return nil
	}
	var ce *apperr.ConflictError
	if errors.As(err, &ce) {
		g.observe(entity, ce.Field, StageIndex)
	}
	return err
}

func (g *Guard) observe(entity, field, stage string) {
	if g == nil || g.conflicts == nil {
		return
	}
	if field == "" {
		field = "unknown"
	}
	g.conflicts.WithLabelValues(entity, field, stage).Inc()
}
