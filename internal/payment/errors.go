package payment

import (
	"errors"
	"fmt"
)

// Kind classifies a payment failure for transport mapping. Kinds up to
// InvalidRequest happen before any persistence or gateway call; the
// rest leave a failed transaction row behind.
type Kind string

const (
	KindForbidden          Kind = "forbidden"
	KindNotFound           Kind = "not_found"
	KindInvalidReference   Kind = "invalid_reference"
	KindInvalidRequest     Kind = "invalid_request"
	KindPaymentRejected    Kind = "payment_rejected"
	KindGatewayError       Kind = "gateway_error"
	KindGatewayUnavailable Kind = "gateway_unavailable"
	KindInternal           Kind = "internal"
)

type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure is a transport fault rather
// than a business decline, so a future retry sweep can tell them apart.
func (e *Error) Retryable() bool {
	return e.Kind == KindGatewayUnavailable
}

func Forbidden(detail string) *Error {
	return &Error{Kind: KindForbidden, Detail: detail}
}

func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

func InvalidReference(detail string) *Error {
	return &Error{Kind: KindInvalidReference, Detail: detail}
}

func InvalidRequest(detail string) *Error {
	return &Error{Kind: KindInvalidRequest, Detail: detail}
}

func PaymentRejected(detail string) *Error {
	return &Error{Kind: KindPaymentRejected, Detail: detail}
}

func GatewayError(detail string, err error) *Error {
	return &Error{Kind: KindGatewayError, Detail: detail, Err: err}
}

func GatewayUnavailable(detail string, err error) *Error {
	return &Error{Kind: KindGatewayUnavailable, Detail: detail, Err: err}
}

func Internal(detail string, err error) *Error {
	return &Error{Kind: KindInternal, Detail: detail, Err: err}
}

// KindOf extracts the classification from any error, defaulting to
// internal for errors that did not originate in this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
