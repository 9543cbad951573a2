// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"biofit/internal/domain/entity"
	"biofit/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New creates a validator with the food specific rules registered.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	// Rules are static, registration only fails on programmer error.
	if err := validate.RegisterValidation("date", isDate); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("session", isSession); err != nil {
		panic(err)
	}

	return &Validator{validate: validate}
}

// Validate runs struct validation and flattens failures into a FieldErrors value.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrs := make(FieldErrors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return fieldErrs
}

// FieldError is one failed rule on one request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// FieldErrors is returned by Validate when any rule fails.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		if fe.Param != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field, fe.Rule, fe.Param))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field, fe.Rule))
		}
	}

	return strings.Join(parts, "; ")
}

func isDate(fl playground.FieldLevel) bool {
	_, err := time.Parse(entity.DateLayout, fl.Field().String())

	return err == nil
}

func isSession(fl playground.FieldLevel) bool {
	return entity.Session(fl.Field().String()).IsValid()
}

// jsonFieldName reports fields by their JSON name so errors match the request body.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}
