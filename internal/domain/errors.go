package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup miss (tracking code, shipment id, contact id,
// account email). Handlers map it to a 404; it is never fatal.
var ErrNotFound = errors.New("not found")

// ValidationError reports a rejected write. The field name is stable and
// machine-readable so the UI can render the message next to the input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
