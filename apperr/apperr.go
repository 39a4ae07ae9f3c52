package apperr

import "errors"

// Kind classifies a domain error for the HTTP boundary.
type Kind int

const (
	// KindInternal is an unexpected failure, mapped to HTTP 500.
	KindInternal Kind = iota
	// KindValidation is missing or malformed input.
	KindValidation
	// KindNotFound is a referenced user, training or allocation that does not exist.
	KindNotFound
	// KindConflict is a duplicate enrollment.
	KindConflict
)

// Error is a domain error carrying the message echoed to the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation builds a validation error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NotFound builds a not-found error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict builds a conflict error.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// KindOf returns the kind of err, or KindInternal for anything that is not
// a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
