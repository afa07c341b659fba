// Package apperr defines the failure kinds surfaced to the HTTP layer.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	// KindNotFound is a missing row or route.
	KindNotFound Kind = iota + 1
	// KindBadInput is a type mismatch, a missing required field or a store constraint violation.
	KindBadInput
	// KindInvalidQuery is an unknown or invalid article-listing query parameter.
	KindInvalidQuery
	// KindUnknownField is a request body key outside the accepted set.
	KindUnknownField
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadInput:
		return "bad_input"
	case KindInvalidQuery:
		return "invalid_query"
	case KindUnknownField:
		return "unknown_field"
	default:
		return "unknown"
	}
}

// Status maps a kind to its response status.
// InvalidQuery and UnknownField answer 404.
func (k Kind) Status() int {
	switch k {
	case KindNotFound, KindInvalidQuery, KindUnknownField:
		return http.StatusNotFound
	case KindBadInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a kind, the client-facing message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind and message, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap attaches cause to a new error of the given kind.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

func NotFound(msg string) *Error     { return New(KindNotFound, msg) }
func BadInput(msg string) *Error     { return New(KindBadInput, msg) }
func InvalidQuery(msg string) *Error { return New(KindInvalidQuery, msg) }
func UnknownField(msg string) *Error { return New(KindUnknownField, msg) }

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
