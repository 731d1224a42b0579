package common

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so the transport layer can map it
// to a status code without string matching.
type ErrorKind string

const (
	KindInvalidMembership ErrorKind = "invalid_membership"
	KindRoomNotFound      ErrorKind = "room_not_found"
	KindNotAMember        ErrorKind = "not_a_member"
	KindValidation        ErrorKind = "validation_error"
	KindStoreUnavailable  ErrorKind = "store_unavailable"
)

// Error is the structured failure surfaced across the service boundary.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError attaches a kind to an underlying cause, typically a
// persistence-layer fault.
func WrapError(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf returns the kind carried by err, or empty string for
// errors outside the taxonomy.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// IsClientError reports whether err should surface as a 400-class
// response rather than a server fault.
func IsClientError(err error) bool {
	switch KindOf(err) {
	case KindInvalidMembership, KindRoomNotFound, KindNotAMember, KindValidation:
		return true
	}
	return false
}
