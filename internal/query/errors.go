package query

import (
	"errors"
	"fmt"
)

// ErrInvalidSortSpec is wrapped by every order_by validation failure.
var ErrInvalidSortSpec = errors.New("invalid sort spec")

// ValidationError reports an untrusted request parameter that was rejected
// before any SQL was built.
type ValidationError struct {
	Param  string
	Value  string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Reason)
}

// Unwrap returns the wrapped sentinel, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

func invalid(param, value, reason string) *ValidationError {
	return &ValidationError{Param: param, Value: value, Reason: reason}
}
