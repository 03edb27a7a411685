package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/asset-registry/internal/domain"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// notblank rejects empty and whitespace-only strings.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return !blank(fl.Field().String())
	}); err != nil {
		// ALLOW-PANIC
		panic(err)
	}
	return v
}

// validateRequest checks req's struct tags and reports the first failing
// field as a *domain.ValidationError.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		key := domain.MsgRequired
		if fe.Tag() == "email" {
			key = domain.MsgInvalidEmail
		}
		return domain.NewValidationError(fe.Field(), domain.Message(key), nil)
	}
	return domain.NewValidationError("", err.Error(), nil)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
