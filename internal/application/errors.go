package application

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrUnknownDoctor       = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// ValidationError carries per-field messages for a rejected input. The
// operation that returns it has made no state change.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// AsValidationError unwraps err into a *ValidationError, or nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
