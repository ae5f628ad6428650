package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-rental/internal/domain"
)

const courierColumns = `id, identifier, name, tax_id, birth_date, license_number,
	license_category, license_image_path, created_at`

// CourierRepo represents courier repository.
type CourierRepo struct{ db *pgxpool.Pool }

// NewCourierRepo creates a new CourierRepo.
func NewCourierRepo(db *pgxpool.Pool) *CourierRepo { return &CourierRepo{db: db} }

// Insert persists a new courier. A unique index violation is reported as a
// generic apperr.ConflictError.
func (r *CourierRepo) Insert(ctx context.Context, c *domain.Courier) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO couriers (`+courierColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.Identifier, c.Name, c.TaxID, c.BirthDate, c.LicenseNumber,
		string(c.LicenseCategory), c.LicenseImagePath, c.CreatedAt,
	)
	if err != nil {
		return writeErr("insert courier", err)
	}
	return nil
}

// Get - returns courier by its ID, or nil when absent.
func (r *CourierRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Courier, error) {
	row := r.db.QueryRow(ctx, `SELECT `+courierColumns+` FROM couriers WHERE id = $1`, id)
	c, err := scanCourier(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier %s: %w", id, err)
	}
	return c, nil
}

// ExistsByTaxID reports whether a courier with the tax ID is stored.
func (r *CourierRepo) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM couriers WHERE tax_id = $1)`, taxID)
}

// ExistsByLicenseNumber reports whether a courier with the license number is stored.
func (r *CourierRepo) ExistsByLicenseNumber(ctx context.Context, number string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM couriers WHERE license_number = $1)`, number)
}

// Update writes the mutable fields of c back. It returns false if no row matched.
func (r *CourierRepo) Update(ctx context.Context, c *domain.Courier) (bool, error) {
	ct, err := r.db.Exec(ctx, `
		UPDATE couriers
		SET identifier         = $2,
		    name               = $3,
		    tax_id             = $4,
		    birth_date         = $5,
		    license_number     = $6,
		    license_category   = $7,
		    license_image_path = $8
		WHERE id = $1`,
		c.ID, c.Identifier, c.Name, c.TaxID, c.BirthDate, c.LicenseNumber,
		string(c.LicenseCategory), c.LicenseImagePath,
	)
	if err != nil {
		return false, writeErr(fmt.Sprintf("update courier %s", c.ID), err)
	}
	return ct.RowsAffected() > 0, nil
}

func (r *CourierRepo) exists(ctx context.Context, q string, arg any) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, q, arg).Scan(&ok); err != nil {
		return false, fmt.Errorf("courier exists: %w", err)
	}
	return ok, nil
}

func scanCourier(row pgx.Row) (*domain.Courier, error) {
	var (
		c        domain.Courier
		category string
	)
	err := row.Scan(&c.ID, &c.Identifier, &c.Name, &c.TaxID, &c.BirthDate, &c.LicenseNumber,
		&category, &c.LicenseImagePath, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.LicenseCategory = domain.LicenseCategory(category)
	c.BirthDate = c.BirthDate.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}
