package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the classification of a failed operation. Every error that reaches
// an HTTP handler is mapped to exactly one Kind; unknown errors are Internal.
type Kind uint8

const (
	Internal Kind = iota
	BadInput
	NotFound
	Conflict
	UpstreamFailure
)

func (k Kind) String() string {
	switch k {
	case BadInput:
		return "bad_input"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case UpstreamFailure:
		return "upstream_failure"
	default:
		return "internal"
	}
}

// genericInternalMessage is what callers see for Internal errors. The original
// error is logged server-side and never leaves the process.
const genericInternalMessage = "internal server error"

// Error carries a classified kind, a caller-safe message, and an optional
// wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a classified error with a caller-safe message.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf is New with fmt-style formatting.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a classification and caller-safe message to an underlying
// error, keeping the cause available via errors.Unwrap for logging.
func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the classification; anything unclassified is Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// IsKind reports whether err classifies as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the caller-safe message for err. Internal errors always
// collapse to a generic message so internals never leak to the caller.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Message
	}
	return genericInternalMessage
}

// HTTPStatus maps a Kind to its HTTP status class.
func HTTPStatus(kind Kind) int {
	switch kind {
	case BadInput:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case UpstreamFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
