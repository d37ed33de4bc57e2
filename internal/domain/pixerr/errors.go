package pixerr

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the PIX charge flow. Every concrete error type below
// unwraps to exactly one of these sentinels so callers can classify with errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrGateway           = errors.New("gateway rejected request")
	ErrConnectivity      = errors.New("gateway connectivity error")
	ErrMalformedResponse = errors.New("malformed gateway response")
	ErrUnexpected        = errors.New("unexpected error")
)

// ValidationError is raised before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// GatewayError is a non-success HTTP answer from the gateway.
type GatewayError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %s (operation=%s status=%d)", ErrGateway.Error(), e.Message, e.Operation, e.StatusCode)
}

func (e *GatewayError) Unwrap() error { return ErrGateway }

// ConnectivityError wraps a transport-level failure (DNS, TCP, TLS, timeout).
type ConnectivityError struct {
	Operation string
	Err       error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("could not reach the payment gateway (operation=%s), check your connection and try again: %v", e.Operation, e.Err)
}

func (e *ConnectivityError) Unwrap() []error { return []error{ErrConnectivity, e.Err} }

// ResponseError is a success response whose body does not match the expected schema.
type ResponseError struct {
	Operation string
	Reason    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s (operation=%s): %s", ErrMalformedResponse.Error(), e.Operation, e.Reason)
}

func (e *ResponseError) Unwrap() error { return ErrMalformedResponse }

// UnexpectedError is the catch-all, keeping the original cause.
type UnexpectedError struct {
	Operation string
	Err       error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("%s (operation=%s): %v", ErrUnexpected.Error(), e.Operation, e.Err)
}

func (e *UnexpectedError) Unwrap() []error { return []error{ErrUnexpected, e.Err} }

// Classify returns the sentinel kind of err, wrapping unknown errors as unexpected.
func Classify(operation string, err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range []error{ErrValidation, ErrGateway, ErrConnectivity, ErrMalformedResponse, ErrUnexpected} {
		if errors.Is(err, kind) {
			return err
		}
	}
	return &UnexpectedError{Operation: operation, Err: err}
}
