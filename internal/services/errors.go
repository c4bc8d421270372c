package services

import "errors"

// ValidationError marks input the caller can correct. Handlers map it to
// 400; any other error from a service write is a storage failure and maps
// to 500 with a generic message.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
