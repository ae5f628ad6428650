package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"service-rental/internal/apperr"
)

const uniqueViolation = "23505"

// IsDuplicate - signals that the error is a unique index violation.
func IsDuplicate(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == uniqueViolation
}

// IsNotFound - signals that the error is a no rows error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// writeErr maps a failed write. Unique index violations become a generic
// conflict; everything else is wrapped with op.
func writeErr(op string, err error) error {
	if IsDuplicate(err) {
		return apperr.Conflict("")
	}
	return fmt.Errorf("%s: %w", op, err)
}
