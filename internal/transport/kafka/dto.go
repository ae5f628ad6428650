package kafka

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"service-rental/internal/domain"
)

// MotoRegisteredDTO is the wire form of domain.MotoRegistered.
type MotoRegisteredDTO struct {
	MotoID     string    `json:"moto_id"`
	Identifier string    `json:"identifier"`
	Year       int       `json:"year"`
	Model      string    `json:"model"`
	Plate      string    `json:"plate"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromDomain converts domain.MotoRegistered to its wire form.
func FromDomain(ev domain.MotoRegistered) MotoRegisteredDTO {
	return MotoRegisteredDTO{
		MotoID:     ev.MotoID.String(),
		Identifier: ev.Identifier,
		Year:       ev.Year,
		Model:      ev.Model,
		Plate:      ev.Plate,
		CreatedAt:  ev.CreatedAt.UTC(),
	}
}

// ToDomain converts MotoRegisteredDTO to domain.MotoRegistered.
func ToDomain(dto MotoRegisteredDTO) (domain.MotoRegistered, error) {
	id, err := uuid.Parse(strings.TrimSpace(dto.MotoID))
	if err != nil {
		return domain.MotoRegistered{}, fmt.Errorf("moto_id: %w", err)
	}
	return domain.MotoRegistered{
		MotoID:     id,
		Identifier: strings.TrimSpace(dto.Identifier),
		Year:       dto.Year,
		Model:      strings.TrimSpace(dto.Model),
		Plate:      domain.NormalizePlate(dto.Plate),
		CreatedAt:  dto.CreatedAt.UTC(),
	}, nil
}
