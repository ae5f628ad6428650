//go:generate mockgen -source=contracts.go -destination=moto_mocks_test.go -package=moto

package moto

import (
	"context"

	"github.com/google/uuid"

	"service-rental/internal/domain"
)

type motoRepository interface {
	Insert(ctx context.Context, m *domain.Moto) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Moto, error)
	ExistsByPlate(ctx context.Context, plate string, exclude uuid.UUID) (bool, error)
	List(ctx context.Context, plate string) ([]domain.Moto, error)
	UpdatePlate(ctx context.Context, id uuid.UUID, plate string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Publisher announces registered motos.
type Publisher interface {
	PublishMotoRegistered(ctx context.Context, ev domain.MotoRegistered) error
}

type structValidator interface {
	Struct(data any) error
}
