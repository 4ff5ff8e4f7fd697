// Package apperr defines the request failure taxonomy and its mapping to
// HTTP status codes. Every terminal failure a handler can surface is one of
// these kinds; anything else is treated as an internal fault.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a request failure.
type Kind int

const (
	// Internal is the catch-all for store or server faults.
	Internal Kind = iota
	// Unauthenticated covers missing, malformed, expired and forged
	// credentials as well as unknown subjects. Callers must not be able to
	// tell these apart.
	Unauthenticated
	// InactiveUser marks a valid credential for a disabled account.
	InactiveUser
	// NotFound marks an absent resource. Checked before ownership.
	NotFound
	// Forbidden marks an ownership mismatch on an existing resource.
	Forbidden
	// UnprocessableQuery marks contradictory or degenerate request
	// parameters.
	UnprocessableQuery
	// Conflict marks a uniqueness violation, e.g. a taken username.
	Conflict
)

// HTTPStatus returns the status code a failure of this kind maps to.
func (k Kind) HTTPStatus() int {
	switch k {
	case Unauthenticated:
		return http.StatusUnauthorized
	case InactiveUser:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Forbidden:
		return http.StatusForbidden
	case UnprocessableQuery:
		return http.StatusUnprocessableEntity
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified, human-readable request failure.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// New builds an Error of the given kind with a formatted detail message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from err, or Internal if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
