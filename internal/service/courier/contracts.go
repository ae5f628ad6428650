package courier

import (
	"context"

	"github.com/google/uuid"

	"service-rental/internal/domain"
)

// courierRepository defines storage operations required by the business layer.
type courierRepository interface {
	Insert(ctx context.Context, c *domain.Courier) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Courier, error)
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
	ExistsByLicenseNumber(ctx context.Context, number string) (bool, error)
}

type structValidator interface {
	Struct(data any) error
}
