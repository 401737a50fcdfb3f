package validator

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Report form field names so messages match what the user filled in.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " es obligatorio"
			case "email":
				errors[field] = field + " debe ser un email válido"
			case "min":
				if e.Kind() == reflect.String {
					errors[field] = field + " debe tener al menos " + e.Param() + " caracteres"
				} else {
					errors[field] = field + " debe ser al menos " + e.Param()
				}
			case "max":
				errors[field] = field + " debe tener como máximo " + e.Param() + " caracteres"
			case "gte":
				errors[field] = field + " debe ser mayor o igual a " + e.Param()
			case "lte":
				errors[field] = field + " debe ser menor o igual a " + e.Param()
			case "oneof":
				errors[field] = field + " debe ser uno de: " + e.Param()
			default:
				errors[field] = field + " no es válido"
			}
		}
	}

	return errors
}

// FirstMessage returns one validation message, picking the first field alphabetically.
func (cv *CustomValidator) FirstMessage(err error) string {
	errs := cv.FormatValidationErrors(err)
	if len(errs) == 0 {
		return "Datos inválidos"
	}
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return errs[fields[0]]
}
