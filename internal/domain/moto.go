package domain

import (
	"time"

	"github.com/google/uuid"
)

// Moto is a motorcycle available for rental.
type Moto struct {
	ID         uuid.UUID
	Identifier string
	Year       int
	Model      string
	Plate      string
	CreatedAt  time.Time
}

// MotoInput carries the caller supplied fields of a moto registration.
type MotoInput struct {
	Identifier string `json:"identifier" validate:"notblank"`
	Year       int    `json:"year"`
	Model      string `json:"model" validate:"notblank"`
	Plate      string `json:"plate" validate:"notblank"`
}

// MotoRegistered is published after a moto has been persisted.
type MotoRegistered struct {
	MotoID     uuid.UUID
	Identifier string
	Year       int
	Model      string
	Plate      string
	CreatedAt  time.Time
}

// NewMotoRegistered builds the event for a persisted moto.
func NewMotoRegistered(m *Moto) MotoRegistered {
	return MotoRegistered{
		MotoID:     m.ID,
		Identifier: m.Identifier,
		Year:       m.Year,
		Model:      m.Model,
		Plate:      m.Plate,
		CreatedAt:  m.CreatedAt,
	}
}

// MotoNotification records that a registered moto matched the notify year.
type MotoNotification struct {
	ID         uuid.UUID
	MotoID     uuid.UUID
	Identifier string
	Year       int
	Model      string
	Plate      string
	CreatedAt  time.Time
}
