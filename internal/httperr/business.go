package httperr

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable error category exposed in responses.
type Kind string

const (
	KindValidation      Kind = "Validation Error"
	KindUnauthorized    Kind = "Unauthorized"
	KindForbidden       Kind = "Forbidden"
	KindNotFound        Kind = "Not Found"
	KindConflict        Kind = "Conflict"
	KindPayloadTooLarge Kind = "Payload Too Large"
	KindConfiguration   Kind = "Configuration Error"
	KindProvider        Kind = "Provider Error"
	KindInternal        Kind = "Internal Server Error"
)

// BusinessError is raised by domain code; handlers map it to HTTP via
// Respond. Err carries the underlying cause, never shown to clients.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Err)
	}
	return e.Code
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func newError(kind Kind, code, message string) *BusinessError {
	return &BusinessError{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *BusinessError {
	return newError(KindValidation, code, message)
}

func Unauthorized(code, message string) *BusinessError {
	return newError(KindUnauthorized, code, message)
}

func Forbidden(code, message string) *BusinessError {
	return newError(KindForbidden, code, message)
}

func NotFound(code, message string) *BusinessError {
	return newError(KindNotFound, code, message)
}

func Conflict(code, message string) *BusinessError {
	return newError(KindConflict, code, message)
}

func PayloadTooLarge(code, message string) *BusinessError {
	return newError(KindPayloadTooLarge, code, message)
}

// Configuration marks an operator fault (missing credential, bad wiring).
func Configuration(code, message string) *BusinessError {
	return newError(KindConfiguration, code, message)
}

// Provider wraps a failure of an upstream geo service.
func Provider(code, message string, err error) *BusinessError {
	return &BusinessError{Kind: KindProvider, Code: code, Message: message, Err: err}
}

func Internal(code string, err error) *BusinessError {
	return &BusinessError{
		Kind:    KindInternal,
		Code:    code,
		Message: "Erro interno do servidor.",
		Err:     err,
	}
}

func IsKind(err error, kind Kind) bool {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func IsCode(err error, code string) bool {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
