package pagarme

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx response from the processor. Body carries the
// processor's error body verbatim for support diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pagarme: status %d: %s", e.StatusCode, e.Body)
}

// UnavailableError is a transport-level failure (connection error or
// timeout) where no processor response was received.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("pagarme: gateway unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

func IsUnavailable(err error) bool {
	var unavailable *UnavailableError
	return errors.As(err, &unavailable)
}
