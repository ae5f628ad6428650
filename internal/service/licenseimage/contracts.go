//go:generate mockgen -source=contracts.go -destination=licenseimage_mocks_test.go -package=licenseimage

package licenseimage

import (
	"context"

	"github.com/google/uuid"

	"service-rental/internal/domain"
)

type courierRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Courier, error)
	Update(ctx context.Context, c *domain.Courier) (bool, error)
}

type blobStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
