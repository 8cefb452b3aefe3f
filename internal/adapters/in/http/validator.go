package http

import (
	"courierapi/internal/core/domain/model/courier"
	"courierapi/internal/core/domain/model/kernel"
	"courierapi/internal/pkg/errs"

	"gopkg.in/go-playground/validator.v9"
)

// Validator implements echo.Validator on top of go-playground/validator with the
// domain specific rules courier_type and time_window registered.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the custom rules registered.
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("time_window", validTimeWindow)
	_ = v.RegisterValidation("courier_type", validCourierType)
	return &Validator{validate: v}
}

// Validate checks i and reports failures as errs.ValueIsInvalidError.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

// validTimeWindow accepts a single "HH:MM-HH:MM" value. The order of the bounds is not
// checked.
func validTimeWindow(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := kernel.ParseTimeWindow(value)
	return err == nil
}

func validCourierType(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := courier.ParseVehicleType(value)
	return err == nil
}
