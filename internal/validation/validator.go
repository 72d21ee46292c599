// Package validation checks user input before it reaches the services.
package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"teamboard/internal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// EchoValidator adapts validator/v10 to echo's Validator interface
type EchoValidator struct{}

// NewEchoValidator creates the validator installed on the echo instance
func NewEchoValidator() *EchoValidator {
	return &EchoValidator{}
}

// Validate implements echo.Validator
func (EchoValidator) Validate(i interface{}) error {
	return Struct(i)
}

// Struct validates a tagged struct and converts the first failure into a
// ValidationFailed error
func Struct(i interface{}) error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errors.ValidationFailed(fe.Field(), describe(fe))
	}
	return errors.InvalidInput(err.Error())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("too long (max %s)", fe.Param())
	case "min":
		return fmt.Sprintf("too short (min %s)", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
