package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// messages maps a validation tag to the sentence shown to the front-end.
// {field} is the json name of the field and {param} the tag parameter.
var messages = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"uuid4":    "{field} must be a valid version 4 UUID",
	"datetime": "{field} must be an RFC 3339 timestamp",
}

// message describes the first failed rule that has a known sentence, falling
// back to the validator's own text. Var checks have no field name, so the value
// is called "value".
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		template, ok := messages[fieldErr.Tag()]
		if !ok {
			continue
		}

		field := fieldErr.Field()
		if field == "" {
			field = "value"
		}

		return strings.NewReplacer("{field}", field, "{param}", fieldErr.Param()).Replace(template)
	}

	return fieldErrors.Error()
}
