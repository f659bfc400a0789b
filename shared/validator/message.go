package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

type messageFunc func(field, param string) string

var messages = map[string]messageFunc{
	"required": func(f, _ string) string { return f + " is required" },
	"oneof":    func(f, p string) string { return fmt.Sprintf("%s must be one of [%s]", f, p) },
	"uuid":     func(f, _ string) string { return f + " must be a valid UUID" },
	"email":    func(f, _ string) string { return f + " must be a valid email address" },
	"datetime": func(f, p string) string { return fmt.Sprintf("%s must match the format %s", f, p) },
	"clock":    func(f, _ string) string { return f + " must be a time of day (HH:MM or HH:MM:SS)" },
	"gt":       func(f, p string) string { return fmt.Sprintf("%s must be greater than %s", f, p) },
	"gte":      atLeast,
	"min":      atLeast,
	"lte":      atMost,
	"max":      atMost,
}

func atLeast(field, param string) string {
	return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
}

func atMost(field, param string) string {
	return fmt.Sprintf("%s must be less than or equal to %s", field, param)
}

// message renders the first field error with a known tag, else the raw error text.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		if render, ok := messages[fieldErr.Tag()]; ok {
			return render(fieldErr.Field(), fieldErr.Param())
		}
	}

	return fieldErrors.Error()
}
