package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-rental/internal/domain"
)

// NotificationRepo stores moto notifications written by the worker.
type NotificationRepo struct{ db *pgxpool.Pool }

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(db *pgxpool.Pool) *NotificationRepo { return &NotificationRepo{db: db} }

// Insert stores n unless a notification for the same moto exists.
// It reports whether a row was written.
func (r *NotificationRepo) Insert(ctx context.Context, n *domain.MotoNotification) (bool, error) {
	ct, err := r.db.Exec(ctx, `
		INSERT INTO moto_notifications (id, moto_id, identifier, year, model, plate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (moto_id) DO NOTHING`,
		n.ID, n.MotoID, n.Identifier, n.Year, n.Model, n.Plate, n.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert moto notification: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

// GetByMotoID returns the notification recorded for a moto, or nil.
func (r *NotificationRepo) GetByMotoID(ctx context.Context, motoID uuid.UUID) (*domain.MotoNotification, error) {
	var n domain.MotoNotification
	err := r.db.QueryRow(ctx, `
		SELECT id, moto_id, identifier, year, model, plate, created_at
		FROM moto_notifications WHERE moto_id = $1`, motoID,
	).Scan(&n.ID, &n.MotoID, &n.Identifier, &n.Year, &n.Model, &n.Plate, &n.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get moto notification %s: %w", motoID, err)
	}
	n.CreatedAt = n.CreatedAt.UTC()
	return &n, nil
}
