package identity

import (
	"errors"
	"fmt"
)

// ErrorType classifies a failure raised by an identity provider.
type ErrorType string

const (
	CredentialsSignin  ErrorType = "CredentialsSignin"
	CallbackRouteError ErrorType = "CallbackRouteError"
	SessionTokenError  ErrorType = "SessionTokenError"
	Configuration      ErrorType = "Configuration"
)

// Error is the only error kind a Provider reports as its own.
type Error struct {
	Type ErrorType
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Type)
	}
	return fmt.Sprintf("%s: %v", e.Type, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(t ErrorType, err error) *Error {
	return &Error{Type: t, Err: err}
}

// AsProviderError reports whether err carries an *Error and returns it.
func AsProviderError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
