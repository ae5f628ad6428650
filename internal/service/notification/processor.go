package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"service-rental/internal/domain"
	"service-rental/internal/logx"
)

// DefaultNotifyYear is the model year that triggers a notification.
const DefaultNotifyYear = 2024

// ErrInvalidEvent marks an event that can never be processed.
var ErrInvalidEvent = errors.New("invalid moto registered event")

type notificationRepository interface {
	Insert(ctx context.Context, n *domain.MotoNotification) (bool, error)
}

// Processor stores a notification for every registered moto of the notify year.
type Processor struct {
	repo       notificationRepository
	notifyYear int
	notified   prometheus.Counter
	logger     logx.Logger
	now        func() time.Time
}

// NewProcessor creates a Processor. A non-positive notifyYear selects
// DefaultNotifyYear; notified may be nil.
func NewProcessor(repo notificationRepository, notifyYear int, notified prometheus.Counter, logger logx.Logger) *Processor {
	if notifyYear <= 0 {
		notifyYear = DefaultNotifyYear
	}
	return &Processor{repo: repo, notifyYear: notifyYear, notified: notified, logger: logger, now: time.Now}
}

// Handle processes a single moto.registered event. Redelivered events are
// absorbed by the unique moto_id index.
func (p *Processor) Handle(ctx context.Context, ev domain.MotoRegistered) error {
	if ev.MotoID == uuid.Nil {
		return fmt.Errorf("%w: empty moto id", ErrInvalidEvent)
	}
	if ev.Year != p.notifyYear {
		p.logger.Debug("moto year not notified",
			logx.String("moto_id", ev.MotoID.String()),
			logx.Int("year", ev.Year),
		)
		return nil
	}

	n := &domain.MotoNotification{
		ID:         uuid.New(),
		MotoID:     ev.MotoID,
		Identifier: ev.Identifier,
		Year:       ev.Year,
		Model:      ev.Model,
		Plate:      ev.Plate,
		CreatedAt:  p.now().UTC(),
	}
	inserted, err := p.repo.Insert(ctx, n)
	if err != nil {
		return fmt.Errorf("store moto notification: %w", err)
	}
	if !inserted {
		p.logger.Info("moto notification already stored", logx.String("moto_id", ev.MotoID.String()))
		return nil
	}

	if p.notified != nil {
		p.notified.Inc()
	}
	p.logger.Info("moto notification stored",
		logx.String("moto_id", ev.MotoID.String()),
		logx.String("plate", ev.Plate),
		logx.Int("year", ev.Year),
	)
	return nil
}
