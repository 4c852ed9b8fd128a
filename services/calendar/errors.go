package calendar

import (
	"errors"
	"fmt"
)

// ErrorKind is what callers branch on; messages are for humans.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "notFound"
	KindForbidden         ErrorKind = "forbidden"
	KindBookingNotAllowed ErrorKind = "bookingNotAllowed"
	KindOwnerNotConnected ErrorKind = "ownerNotConnected"
	KindProvider          ErrorKind = "providerError"
	KindInvalidInput      ErrorKind = "invalidInput"
)

// Error is the typed error raised by the calendar service.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the kind from an error chain; empty when the error did
// not originate here.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

func newNotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func newForbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func newBookingNotAllowed(msg string) error {
	return &Error{Kind: KindBookingNotAllowed, Message: msg}
}

func newOwnerNotConnected(msg string) error {
	return &Error{Kind: KindOwnerNotConnected, Message: msg}
}

func newProviderError(msg string, cause error) error {
	return &Error{Kind: KindProvider, Message: msg, Err: cause}
}

func newInvalidInput(msg string) error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}
