package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"qravy/internal/domain/menu"
	"qravy/internal/shared/constants"
	"qravy/internal/shared/errors"
)

var validate *validator.Validate

// init initializes the validator
func init() {
	validate = validator.New()
	configureValidator(validate)
}

// configureValidator reports JSON field names and registers the menu tags.
func configureValidator(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("channel", func(fl validator.FieldLevel) bool {
		_, err := menu.ParseChannel(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("overlay_state", func(fl validator.FieldLevel) bool {
		_, err := menu.ParseOverlayState(fl.Field().String())
		return err == nil
	})
}

// RegisterGinValidators installs the custom tags on gin's binding engine.
func RegisterGinValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		configureValidator(v)
	}
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	return ValidationErrorFrom(err)
}

// ValidationErrorFrom converts validator (or binding) errors to a validation AppError.
func ValidationErrorFrom(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationError("Invalid request body", err.Error())
	}

	errorMessages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		errorMessages = append(errorMessages, getFieldErrorMessage(fieldError))
	}

	return errors.NewValidationError(
		constants.ErrMsgValidationFailed,
		strings.Join(errorMessages, "; "),
	)
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s entries", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at most %s entries", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "channel":
		return fmt.Sprintf("%s must be one of [dine-in online]", field)
	case "overlay_state":
		return fmt.Sprintf("%s must be one of [on off removed]", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}
