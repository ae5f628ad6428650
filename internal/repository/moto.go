package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-rental/internal/domain"
)

const motoColumns = `id, identifier, year, model, plate, created_at`

// MotoRepo represents moto repository.
type MotoRepo struct{ db *pgxpool.Pool }

// NewMotoRepo creates a new MotoRepo.
func NewMotoRepo(db *pgxpool.Pool) *MotoRepo { return &MotoRepo{db: db} }

// Insert persists a new moto.
func (r *MotoRepo) Insert(ctx context.Context, m *domain.Moto) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO motos (`+motoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Identifier, m.Year, m.Model, m.Plate, m.CreatedAt,
	)
	if err != nil {
		return writeErr("insert moto", err)
	}
	return nil
}

// Get - returns moto by its ID, or nil when absent.
func (r *MotoRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Moto, error) {
	row := r.db.QueryRow(ctx, `SELECT `+motoColumns+` FROM motos WHERE id = $1`, id)
	m, err := scanMoto(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get moto %s: %w", id, err)
	}
	return m, nil
}

// ExistsByPlate reports whether another moto uses plate. Pass uuid.Nil as
// exclude to check against every moto.
func (r *MotoRepo) ExistsByPlate(ctx context.Context, plate string, exclude uuid.UUID) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM motos WHERE plate = $1 AND id <> $2)`, plate, exclude,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("moto exists by plate: %w", err)
	}
	return ok, nil
}

// List returns motos newest first. A non-empty plate filters by exact match.
func (r *MotoRepo) List(ctx context.Context, plate string) ([]domain.Moto, error) {
	q := `SELECT ` + motoColumns + ` FROM motos`
	args := make([]any, 0, 1)
	if plate != "" {
		q += ` WHERE plate = $1`
		args = append(args, plate)
	}
	q += ` ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list motos: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Moto, 0)
	for rows.Next() {
		m, err := scanMoto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan moto: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list motos: %w", err)
	}
	return out, nil
}

// UpdatePlate changes the plate of a moto. It returns false if no row matched.
func (r *MotoRepo) UpdatePlate(ctx context.Context, id uuid.UUID, plate string) (bool, error) {
	ct, err := r.db.Exec(ctx, `UPDATE motos SET plate = $2 WHERE id = $1`, id, plate)
	if err != nil {
		return false, writeErr(fmt.Sprintf("update moto %s plate", id), err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a moto. It returns false if no row matched.
func (r *MotoRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM motos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete moto %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

func scanMoto(row pgx.Row) (*domain.Moto, error) {
	var m domain.Moto
	if err := row.Scan(&m.ID, &m.Identifier, &m.Year, &m.Model, &m.Plate, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.CreatedAt = m.CreatedAt.UTC()
	return &m, nil
}
