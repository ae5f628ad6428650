package handlers

import (
	"github.com/samber/lo"

	"service-rental/internal/domain"
)

func (req createCourierRequest) toInput() domain.CourierInput {
	return domain.CourierInput{
		Identifier:       req.Identifier,
		Name:             req.Name,
		TaxID:            req.TaxID,
		BirthDate:        req.BirthDate.Time,
		LicenseNumber:    req.LicenseNumber,
		LicenseCategory:  req.LicenseCategory,
		LicenseImagePath: req.LicenseImagePath,
	}
}

func courierToResponse(c *domain.Courier) courierDTO {
	return courierDTO{
		ID:               c.ID.String(),
		Identifier:       c.Identifier,
		Name:             c.Name,
		TaxID:            c.TaxID,
		BirthDate:        c.BirthDate,
		LicenseNumber:    c.LicenseNumber,
		LicenseCategory:  string(c.LicenseCategory),
		LicenseImagePath: c.LicenseImagePath,
		CreatedAt:        c.CreatedAt,
	}
}

func (req createMotoRequest) toInput() domain.MotoInput {
	return domain.MotoInput{
		Identifier: req.Identifier,
		Year:       req.Year,
		Model:      req.Model,
		Plate:      req.Plate,
	}
}

func motoToResponse(m *domain.Moto) motoDTO {
	return motoDTO{
		ID:         m.ID.String(),
		Identifier: m.Identifier,
		Year:       m.Year,
		Model:      m.Model,
		Plate:      m.Plate,
		CreatedAt:  m.CreatedAt,
	}
}

func motosToResponse(list []domain.Moto) []motoDTO {
	return lo.Map(list, func(m domain.Moto, _ int) motoDTO { return motoToResponse(&m) })
}
