package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("event_type", func(fl validator.FieldLevel) bool {
		return domain.IsValidEventType(fl.Field().String())
	})
	validate.RegisterValidation("event_access", func(fl validator.FieldLevel) bool {
		return domain.IsValidAccess(fl.Field().String())
	})
}

// validateStruct runs the tag-based rules and converts the first failure
// into a domain error with the offending field name.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.ErrInvalidField("request", err.Error())
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return domain.ErrMissingField(field)
	case "email":
		return domain.ErrInvalidField(field, "invalid format")
	case "event_type":
		return domain.ErrInvalidField(field, "not an allowed event type")
	case "event_access":
		return domain.ErrInvalidField(field, "must be Public, Private or Inactive")
	default:
		return domain.ErrInvalidField(field, "failed "+fe.Tag()+" constraint")
	}
}
