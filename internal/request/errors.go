package request

import (
	"fmt"
	"strings"
)

// UnknownEventError is returned when the event token names no known event.
type UnknownEventError struct {
	Token string
	Valid []string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown event: %s (valid events: %s)", e.Token, strings.Join(e.Valid, ", "))
}

// MissingEventError is returned when no token is left for the event after flag extraction.
type MissingEventError struct{}

func (e *MissingEventError) Error() string {
	return "missing event"
}

// InvalidTimeoutError is returned when the --timeout value is not an integer.
type InvalidTimeoutError struct {
	Value string
	Err   error
}

func (e *InvalidTimeoutError) Error() string {
	return fmt.Sprintf("invalid timeout %q: must be a whole number of seconds", e.Value)
}

func (e *InvalidTimeoutError) Unwrap() error {
	return e.Err
}
