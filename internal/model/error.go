package model

import (
	"errors"
	"net/http"
)

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Kind classifies a gateway failure. Only the resulting HTTP status is
// visible to callers; kinds exist for logging and tests.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindDecode
	KindNetwork
	KindConfirmation
)

// String returns the kind label used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDecode:
		return "decode"
	case KindNetwork:
		return "network"
	case KindConfirmation:
		return "confirmation"
	default:
		return "internal"
	}
}

// Error is a failure tagged with a Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError tags err with kind. Returns nil for a nil err.
func WrapError(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf extracts the Kind from err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the status code exposed at the boundary.
// Validation failures are 400, everything else collapses to 500.
func HTTPStatus(err error) int {
	if KindOf(err) == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
