package moto

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"service-rental/internal/apperr"
	"service-rental/internal/domain"
	"service-rental/internal/logx"
	"service-rental/internal/service/uniqueness"
)

const entity = "moto"

// Service manages the moto catalog.
type Service struct {
	repo             motoRepository
	validate         structValidator
	guard            *uniqueness.Guard
	publisher        Publisher
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates a moto Service. publisher may be nil, in which case
// registrations are not announced.
func NewService(r motoRepository, v structValidator, g *uniqueness.Guard, p Publisher, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		validate:         v,
		guard:            g,
		publisher:        p,
		logger:           logger,
		operationTimeout: timeout,
		now:              time.Now,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) plateProbe(plate string, exclude uuid.UUID) uniqueness.Probe {
	return uniqueness.Probe{Field: "plate", Exists: func(ctx context.Context) (bool, error) {
		return s.repo.ExistsByPlate(ctx, plate, exclude)
	}}
}

// Register stores a new moto and publishes moto.registered. A publish
// failure is logged and does not fail the registration.
func (s *Service) Register(ctx context.Context, in domain.MotoInput) (*domain.Moto, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	m := &domain.Moto{
		ID:         uuid.New(),
		Identifier: strings.TrimSpace(in.Identifier),
		Year:       in.Year,
		Model:      strings.TrimSpace(in.Model),
		Plate:      domain.NormalizePlate(in.Plate),
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.guard.Check(ctx, entity, s.plateProbe(m.Plate, uuid.Nil)); err != nil {
		return nil, err
	}

	m.CreatedAt = s.now().UTC()
	if err := s.guard.Confirm(entity, s.repo.Insert(ctx, m)); err != nil {
		return nil, err
	}
	s.logger.Info("moto registered", logx.String("id", m.ID.String()), logx.String("plate", m.Plate))

	if s.publisher != nil {
		if err := s.publisher.PublishMotoRegistered(ctx, domain.NewMotoRegistered(m)); err != nil {
			s.logger.Warn("publish moto registered failed",
				logx.String("id", m.ID.String()),
				logx.Err(err),
			)
		}
	}
	return m, nil
}

// Get retrieves a moto by its ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Moto, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.ErrNotFound
	}
	return m, nil
}

// List returns motos newest first, optionally filtered by exact plate.
func (s *Service) List(ctx context.Context, plate string) ([]domain.Moto, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, domain.NormalizePlate(plate))
}

// UpdatePlate changes the plate of an existing moto and returns the updated entity.
func (s *Service) UpdatePlate(ctx context.Context, id uuid.UUID, plate string) (*domain.Moto, error) {
	if strings.TrimSpace(plate) == "" {
		return nil, apperr.Required("plate")
	}
	plate = domain.NormalizePlate(plate)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.ErrNotFound
	}
	if m.Plate == plate {
		return m, nil
	}

	if err := s.guard.Check(ctx, entity, s.plateProbe(plate, id)); err != nil {
		return nil, err
	}

	ok, err := s.repo.UpdatePlate(ctx, id, plate)
	if err = s.guard.Confirm(entity, err); err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}
	s.logger.Info("moto plate updated",
		logx.String("id", id.String()),
		logx.String("from", m.Plate),
		logx.String("to", plate),
	)
	m.Plate = plate
	return m, nil
}

// Delete removes a moto.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	s.logger.Info("moto deleted", logx.String("id", id.String()))
	return nil
}
