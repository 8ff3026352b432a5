package tts

import (
	"fmt"
	"strings"

	"github.com/neosapience/typecast-mcp/pkg/errorsx"
)

// ValidationError reports a request field that violated a constraint.
// The error never reaches the network; it is produced before any call.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e ValidationError) Error() string {
	return e.Field + " " + e.Constraint
}

// InvalidEnumValueError reports a value outside a closed enumeration.
type InvalidEnumValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e InvalidEnumValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %q (allowed: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

func validationErr(field, constraint string) error {
	return errorsx.Wrap(ValidationError{Field: field, Constraint: constraint}, errorsx.ReasonValidation)
}

func enumErr(field, value string, allowed []string) error {
	return errorsx.Wrap(InvalidEnumValueError{Field: field, Value: value, Allowed: allowed}, errorsx.ReasonInvalidEnum)
}
