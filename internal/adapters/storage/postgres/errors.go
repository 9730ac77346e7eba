package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"vet-clinic/internal/domain/clinic"
)

var (
	// ErrForeignKey: el padre se borró entre la validación y el insert.
	ErrForeignKey = fmt.Errorf("postgres: foreign key violation: %w", clinic.ErrMissingParent)
	ErrDuplicate  = errors.New("postgres: duplicate key")
	ErrCheck      = errors.New("postgres: check constraint violation")
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// mapError etiqueta las violaciones de constraint conocidas; el resto pasa igual.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %s: %w", ErrForeignKey, pgErr.ConstraintName, err)
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s: %w", ErrDuplicate, pgErr.ConstraintName, err)
	case codeCheckViolation:
		return fmt.Errorf("%w: %s: %w", ErrCheck, pgErr.ConstraintName, err)
	default:
		return err
	}
}
