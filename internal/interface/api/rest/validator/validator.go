package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"petconnect-api/internal/domain/pet"
	"petconnect-api/internal/domain/user"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, ok := user.ParseRole(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("pettype", func(fl validator.FieldLevel) bool {
		_, ok := pet.ParseType(fl.Field().String())
		return ok
	})

	return v
}

// Validate returns field -> message for every failed rule, or nil.
func Validate(req any) map[string]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string]string{"body": err.Error()}
	}

	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		key := fieldPath(fe.Namespace())
		out[key] = message(key, fe)
	}
	return out
}

// fieldPath drops the struct type and embedded struct names from a namespace,
// keeping the json names: "RegisterRequest.Profile.security_answers.pet"
// becomes "security_answers.pet".
func fieldPath(ns string) string {
	parts := strings.Split(ns, ".")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" && unicode.IsUpper(rune(p[0])) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "invalid email format"
	case "url":
		return field + " must be a valid URL"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s cannot be negative", field)
	case "role":
		return "unknown user type"
	case "pettype":
		return "unknown pet type"
	}
	return field + " is invalid"
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}
