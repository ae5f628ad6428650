package courier

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

const entity = "courier"

// Service coordinates courier registration and lookup.
type Service struct {
	repo             courierRepository
	validate         structValidator
	guard            *uniqueness.Guard
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates and configures a courier Service.
func NewService(r courierRepository, v structValidator, g *uniqueness.Guard, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		validate:         v,
		guard:            g,
		logger:           logger,
		operationTimeout: timeout,
		now:              time.Now,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Register validates and normalizes in, checks tax ID and license number for
// uniqueness and persists a new courier.
func (s *Service) Register(ctx context.Context, in domain.CourierInput) (*domain.Courier, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	category, ok := domain.ParseLicenseCategory(in.LicenseCategory)
	if !ok {
		return nil, apperr.Invalid("licenseCategory must be 'A', 'B' or 'A+B'", "licenseCategory")
	}

	c := &domain.Courier{
		ID:               uuid.New(),
		Identifier:       strings.TrimSpace(in.Identifier),
		Name:             strings.TrimSpace(in.Name),
		TaxID:            strings.TrimSpace(in.TaxID),
		LicenseNumber:    strings.TrimSpace(in.LicenseNumber),
		LicenseCategory:  category,
		LicenseImagePath: domain.OptionalString(in.LicenseImagePath),
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.guard.Check(ctx, entity,
		uniqueness.Probe{Field: "taxId", Exists: func(ctx context.Context) (bool, error) {
			return s.repo.ExistsByTaxID(ctx, c.TaxID)
		}},
		uniqueness.Probe{Field: "licenseNumber", Exists: func(ctx context.Context) (bool, error) {
			return s.repo.ExistsByLicenseNumber(ctx, c.LicenseNumber)
		}},
	)
	if err != nil {
		return nil, err
	}

	c.BirthDate = domain.NormalizeBirthDate(in.BirthDate)
	c.CreatedAt = s.now().UTC()

	if err := s.guard.Confirm(entity, s.repo.Insert(ctx, c)); err != nil {
		return nil, err
	}
	s.logger.Info("courier registered",
		logx.String("id", c.ID.String()),
		logx.String("category", string(c.LicenseCategory)),
	)
	return c, nil
}

// Get retrieves a courier by its ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}
