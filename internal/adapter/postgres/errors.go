package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// constraintErrors maps SQLSTATE integrity codes to domain sentinels.
var constraintErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation: the parent row is gone
	"23514": domain.ErrValidation,    // check_violation
}

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and id. Context errors keep their identity.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	cause := err
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
	case errors.Is(err, pgx.ErrNoRows):
		cause = domain.ErrNotFound
	case errors.As(err, &pgErr):
		if mapped, ok := constraintErrors[pgErr.Code]; ok {
			cause = mapped
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, cause)
}
