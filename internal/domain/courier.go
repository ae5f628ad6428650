package domain

import (
	"time"

	"github.com/google/uuid"
)

// Courier is a registered delivery person eligible to rent motorcycles.
type Courier struct {
	ID               uuid.UUID
	Identifier       string
	Name             string
	TaxID            string
	BirthDate        time.Time
	LicenseNumber    string
	LicenseCategory  LicenseCategory
	LicenseImagePath *string
	CreatedAt        time.Time
}

// CourierInput carries the caller supplied fields of a courier registration.
// Required fields are checked with the notblank rule before any normalization.
type CourierInput struct {
	Identifier       string    `json:"identifier" validate:"notblank"`
	Name             string    `json:"name" validate:"notblank"`
	TaxID            string    `json:"taxId" validate:"notblank"`
	BirthDate        time.Time `json:"birthDate"`
	LicenseNumber    string    `json:"licenseNumber" validate:"notblank"`
	LicenseCategory  string    `json:"licenseCategory" validate:"notblank"`
	LicenseImagePath *string   `json:"licenseImagePath"`
}
