package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain-level error discrimination.
// Components wrap these so the error normalizer can map them to a descriptor
// without knowing which backing store raised them.
var (
	ErrNotFound              = errors.New("not found")
	ErrConflict              = errors.New("conflict")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrBadRequest            = errors.New("bad request")
	ErrInternal              = errors.New("internal error")
	ErrInvalidRegistration   = errors.New("invalid registration")
	ErrInvalidIdempotencyKey = errors.New("invalid idempotency key")
	ErrUnsupportedOperation  = errors.New("unsupported patch operation")
	ErrUnknownField          = errors.New("unknown field")
)

// Fault is a component-local error whose message is safe to show to API
// consumers. It unwraps to one of the sentinels above.
type Fault struct {
	Err error
	Msg string
}

func (f *Fault) Error() string { return f.Msg }
func (f *Fault) Unwrap() error { return f.Err }

// NewFault builds a Fault around sentinel with a formatted client-facing message.
func NewFault(sentinel error, format string, args ...any) error {
	return &Fault{Err: sentinel, Msg: fmt.Sprintf(format, args...)}
}
