package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// birthDate layouts accepted on the wire, tried in order. The last two carry
// no zone and are parsed as UTC.
var birthDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	time.DateOnly,
}

var errBirthDate = errors.New("birthDate must be an ISO-8601 date or timestamp")

type jsonDate struct{ time.Time }

func (d *jsonDate) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errBirthDate
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return errBirthDate
}

type createCourierRequest struct {
	Identifier       string   `json:"identifier"`
	Name             string   `json:"name"`
	TaxID            string   `json:"taxId"`
	BirthDate        jsonDate `json:"birthDate"`
	LicenseNumber    string   `json:"licenseNumber"`
	LicenseCategory  string   `json:"licenseCategory"`
	LicenseImagePath *string  `json:"licenseImagePath,omitempty"`
}

type courierDTO struct {
	ID               string    `json:"id"`
	Identifier       string    `json:"identifier"`
	Name             string    `json:"name"`
	TaxID            string    `json:"taxId"`
	BirthDate        time.Time `json:"birthDate"`
	LicenseNumber    string    `json:"licenseNumber"`
	LicenseCategory  string    `json:"licenseCategory"`
	LicenseImagePath *string   `json:"licenseImagePath,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type createMotoRequest struct {
	Identifier string `json:"identifier"`
	Year       int    `json:"year"`
	Model      string `json:"model"`
	Plate      string `json:"plate"`
}

type updatePlateRequest struct {
	Plate string `json:"plate"`
}

type motoDTO struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	Year       int       `json:"year"`
	Model      string    `json:"model"`
	Plate      string    `json:"plate"`
	CreatedAt  time.Time `json:"createdAt"`
}

type licenseImageResponse struct {
	Path string `json:"path"`
}
