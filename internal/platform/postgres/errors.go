package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"
)

// MapError maps a database error from an insert, update or select to a store error.
// A foreign key violation here means the row points at a missing parent.
// The original error is wrapped to preserve context.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%w: foreign key violation (%s): %v",
			store.ErrInvalidReference, pgErr.ConstraintName, err)
	case IsCheckConstraintViolation(err):
		return fmt.Errorf("%w: check constraint violation (%s): %v",
			store.ErrInvalidEntity, pgErr.ConstraintName, err)
	case IsNotNullViolation(err):
		return fmt.Errorf("%w: not null violation (%s): %v",
			store.ErrInvalidEntity, pgErr.ColumnName, err)
	}

	return err
}

// WrapError attaches entity and operation to a failure that maps to none of
// the store sentinels. Classified errors and nil pass through unchanged.
func WrapError(entity, op string, err error) error {
	switch {
	case err == nil,
		store.IsNotFoundError(err),
		store.IsDuplicateError(err),
		errors.Is(err, store.ErrInvalidReference),
		errors.Is(err, store.ErrReferenced),
		errors.Is(err, store.ErrInvalidEntity):
		return err
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return err
	}
	return store.NewStoreError(entity, op, "database operation failed", err)
}

// MapDeleteError is MapError for DELETE statements, where a foreign key
// violation means other rows still reference the target.
func MapDeleteError(err error) error {
	if IsForeignKeyViolation(err) {
		var pgErr *pgconn.PgError
		errors.As(err, &pgErr)
		return fmt.Errorf("%w: referenced via %s: %v", store.ErrReferenced, pgErr.ConstraintName, err)
	}
	return MapError(err)
}

// MapUniqueViolation maps a unique violation to specificError, keeping the cause.
// Other errors go through MapError.
func MapUniqueViolation(err error, specificError error) error {
	if IsUniqueViolation(err) && specificError != nil {
		return fmt.Errorf("%w: %v", specificError, err)
	}
	return MapError(err)
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign key constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// IsCheckConstraintViolation checks if the given error is a PostgreSQL check constraint violation.
func IsCheckConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == checkViolationCode
}

// IsNotNullViolation checks if the given error is a PostgreSQL not null constraint violation.
func IsNotNullViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == notNullViolationCode
}

// CheckRowsAffected returns notFound when an UPDATE or DELETE touched no rows.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
