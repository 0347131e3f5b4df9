package apperr

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories the API can report.
type Kind int

const (
	KindInternal Kind = iota
	KindNoToken
	KindBadCredentials
	KindNoPermission
	KindNotFound
	KindNoUser
	KindValidation
	KindDuplicateEmail
)

// Error carries a failure kind plus a user-facing message. The wrapped cause
// is kept for logging only and is never serialized into a response.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind with a user-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to an error of the given kind.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf classifies any error. Errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
