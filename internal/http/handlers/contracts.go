package handlers

import (
	"context"

	"github.com/google/uuid"

	"service-rental/internal/domain"
)

type courierUsecase interface {
	Register(ctx context.Context, in domain.CourierInput) (*domain.Courier, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Courier, error)
}

type motoUsecase interface {
	Register(ctx context.Context, in domain.MotoInput) (*domain.Moto, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Moto, error)
	List(ctx context.Context, plate string) ([]domain.Moto, error)
	UpdatePlate(ctx context.Context, id uuid.UUID, plate string) (*domain.Moto, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type licenseImageUsecase interface {
	Attach(ctx context.Context, courierID uuid.UUID, data []byte, mediaType string) (string, error)
}
