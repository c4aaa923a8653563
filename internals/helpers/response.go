package helper

import (
	"errors"
	"reflect"
	"strings"

	"construction_backend/internals/helpers/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names ("site_id") instead of Go field names ("SiteID")
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate menjalankan validator.v10 dan mengubah hasilnya ke apperr.ValidationError.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperr.BadRequest("Invalid input")
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[trimNamespace(fe.Namespace())] = messageFor(fe)
	}
	return &apperr.ValidationError{Fields: fields}
}

// "AttendanceBulkUpsertRequest.items[0].status" -> "items[0].status"
func trimNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "invalid email format"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of " + fe.Param()
	case "datetime":
		return fe.Field() + " must match " + fe.Param()
	default:
		return "invalid value"
	}
}
