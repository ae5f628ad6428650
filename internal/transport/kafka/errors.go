package kafka

import "errors"

// errPermanent is the fallback text for Permanent(nil).
var errPermanent = errors.New("message cannot be processed")

type permanentError struct{ cause error }

func (e *permanentError) Error() string  { return e.cause.Error() }
func (e *permanentError) Unwrap() error { return e.cause }

// Permanent tags err so the consumer commits the offset instead of
// re-reading the message. Wrapping an already tagged error is a no-op.
func Permanent(err error) error {
	if err == nil {
		err = errPermanent
	}
	if IsPermanent(err) {
		return err
	}
	return &permanentError{cause: err}
}

// IsPermanent reports whether err, or anything it wraps, came from Permanent.
func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}
