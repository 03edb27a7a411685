package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/store"
)

// Error handling principles:
// 1. Expected failures are returned as domain errors (ValidationError,
//    ConflictError, NotFoundError) that callers check with errors.Is/errors.As.
// 2. Store errors with a domain meaning are translated at the service boundary.
// 3. Everything else is wrapped in a ServiceError and surfaces as a generic failure.

// ServiceError wraps an unclassified failure with the service and operation it came from.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, op string, err error) error {
	return &ServiceError{Service: service, Op: op, Err: err}
}

// errCase pairs a store error with the domain error it becomes.
type errCase struct {
	target error
	result error
}

func on(target, result error) errCase {
	return errCase{target: target, result: result}
}

// translate maps a store failure onto the domain taxonomy using the first
// matching case. Domain errors pass through; invalid entities become
// validation failures; anything else is wrapped in a ServiceError.
func translate(service, op string, err error, cases ...errCase) error {
	for _, c := range cases {
		if errors.Is(err, c.target) {
			return c.result
		}
	}
	switch {
	case domain.IsValidation(err), domain.IsConflict(err), domain.IsNotFound(err):
		return err
	case errors.Is(err, store.ErrInvalidEntity):
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return verr
		}
		return domain.NewValidationError("", err.Error(), nil)
	}
	return NewServiceError(service, op, err)
}
