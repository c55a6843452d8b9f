package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"openfare/internal/shared/errors"
)

// pnrRegex matches partner booking references: uppercase alphanumeric,
// 4 to 20 characters.
var pnrRegex = regexp.MustCompile(`^[A-Z0-9]{4,20}$`)

var validate *validator.Validate

func init() {
	validate = validator.New()
	registerCustomRules(validate)

	// Use JSON tag names for validation errors
	validate.RegisterTagNameFunc(jsonTagName)

	// The same rules apply to gin binding tags.
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomRules(engine)
	}
}

func registerCustomRules(v *validator.Validate) {
	v.RegisterValidation("pnr", func(fl validator.FieldLevel) bool {
		return pnrRegex.MatchString(fl.Field().String())
	})
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewValidationError("Validation failed")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, getFieldErrorMessage(fieldError))
	}

	return errors.NewValidationError(strings.Join(messages, "; "))
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "pnr":
		return fmt.Sprintf("%s must be an uppercase alphanumeric booking reference", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
