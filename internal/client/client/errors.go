package client

import (
	"encoding/json"
	"errors"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrRegistration      = errors.New("registration failed")
	ErrMalformedResponse = errors.New("malformed server response")
)

// RegistrationError is returned when the auth service answers a registration
// with a non-2xx status. Its message is always ErrRegistration's; the status
// and the parsed response body are kept for callers that want to inspect
// them, but they are never part of Error().
type RegistrationError struct {
	Status int
	Detail json.RawMessage
}

func (e *RegistrationError) Error() string {
	return ErrRegistration.Error()
}

func (e *RegistrationError) Is(target error) bool {
	return target == ErrRegistration
}
