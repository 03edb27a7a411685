package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/asset-registry/internal/api/shared"
	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/service/auth"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// notFoundMessages maps entity names to their not-found message.
var notFoundMessages = map[string]domain.MessageKey{
	"user":        domain.MsgUserNotFound,
	"category":    domain.MsgCategoryNotFound,
	"asset":       domain.MsgAssetNotFound,
	"transaction": domain.MsgTxNotFound,
}

// conflictMessages maps entity names to their duplicate-key message.
var conflictMessages = map[string]domain.MessageKey{
	"user":     domain.MsgEmailExists,
	"category": domain.MsgCategoryExists,
	"asset":    domain.MsgAssetExists,
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return domain.Message(domain.MsgUnexpected)
	}

	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		conflictErr   *domain.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		if validationErr.Field == "" {
			return validationErr.Message
		}
		return validationErr.Field + " " + validationErr.Message

	case errors.As(err, &notFoundErr):
		if key, ok := notFoundMessages[notFoundErr.Entity]; ok {
			return domain.Message(key)
		}
		return domain.Message(domain.MsgNotFound)

	case errors.As(err, &conflictErr):
		if conflictErr.Reason != "" {
			return conflictErr.Error()
		}
		if key, ok := conflictMessages[conflictErr.Entity]; ok {
			return domain.Message(key)
		}
		return domain.Message(domain.MsgConflict)

	case errors.Is(err, auth.ErrInvalidCredentials):
		return domain.Message(domain.MsgInvalidLogin)

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	default:
		return domain.Message(domain.MsgUnexpected)
	}
}

// HandleAPIError writes the error envelope for err. Server errors always use
// the generic message; for client errors a non-empty customMsg overrides the
// derived one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, customMsg string) {
	statusCode := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if customMsg != "" && statusCode < http.StatusInternalServerError {
		message = customMsg
	}

	var opts []shared.ResponseOption
	if statusCode == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, statusCode, message, err, opts...)
}
