package request

import (
	"errors"
	"strings"

	"resident_service/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var errUnexpectedValidatorEngine = errors.New("gin binding validator is not go-playground/validator")

// RegisterValidators adds the booking-specific tags used by the request
// DTOs: isodate, slot and swappref.
func RegisterValidators(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"isodate": func(fl validator.FieldLevel) bool {
			return entities.IsISODate(fl.Field().String())
		},
		"slot": func(fl validator.FieldLevel) bool {
			return entities.IsValidSlot(fl.Field().String())
		},
		"swappref": func(fl validator.FieldLevel) bool {
			return entities.SwapPref(strings.TrimSpace(fl.Field().String())).Valid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// RegisterGinValidators installs the custom tags on gin's binding engine.
func RegisterGinValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errUnexpectedValidatorEngine
	}
	return RegisterValidators(v)
}
