package kafka

import (
	"errors"

	"drillflow-dispatch/internal/apperr"
)

// PermanentError marks a handler failure that another attempt cannot fix.
// The consumer logs it and moves past the message.
type PermanentError struct {
	Err error
}

func (e PermanentError) Error() string {
	if e.Err == nil {
		return "permanent handler error"
	}
	return "permanent: " + e.Err.Error()
}

func (e PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err so the consumer does not retry it.
func Permanent(err error) error {
	return PermanentError{Err: err}
}

// isPermanent reports whether err must not be retried: explicitly marked
// failures and requests the domain rejected as invalid.
func isPermanent(err error) bool {
	var p PermanentError
	if errors.As(err, &p) {
		return true
	}
	return errors.Is(err, apperr.ErrInvalid)
}
