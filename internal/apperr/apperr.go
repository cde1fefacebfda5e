// Package apperr defines the closed set of failure kinds the service can
// report and their mapping onto HTTP status codes. Every layer produces one
// of these kinds; the response writer in internal/api is the single terminal
// translation point.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a request failure.
type Kind int

const (
	// KindMalformedPayload marks a request body that is not syntactically
	// valid JSON.
	KindMalformedPayload Kind = iota
	// KindSchemaInvalid marks a parseable body that violates the input
	// schema.
	KindSchemaInvalid
	// KindNotFound marks a lookup for a VIN with no matching row.
	KindNotFound
	// KindPersistence marks a storage-layer failure of any sort.
	KindPersistence
	// KindUnavailable marks an unreachable database, reported by the
	// health check.
	KindUnavailable
)

// HTTPStatus maps a Kind onto its transport status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindMalformedPayload:
		return http.StatusBadRequest
	case KindSchemaInvalid:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindMalformedPayload:
		return "malformed_payload"
	case KindSchemaInvalid:
		return "schema_invalid"
	case KindNotFound:
		return "not_found"
	case KindPersistence:
		return "persistence"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Violation describes one field-level problem in a request payload. Field
// holds the JSON name of the offending field, Kind the short machine tag of
// the rule that failed ("required", "max", "invalid_type", ...).
type Violation struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Error is the failure value handlers hand to the response writer. Detail is
// the client-facing message; Cause is the internal error, logged but never
// serialized into a response.
type Error struct {
	Kind       Kind
	Detail     string
	Violations []Violation
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Unwrap exposes the cause to errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// E builds an Error with a kind and client-facing detail.
func E(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap builds an Error that records cause for logging while keeping detail
// as the only text a client will see.
func Wrap(kind Kind, detail string, cause error) *Error {
	return &Error{Kind: kind, Detail: detail, Cause: cause}
}

// WithViolations returns a copy of e carrying the given field violations.
func (e *Error) WithViolations(v ...Violation) *Error {
	cp := *e
	cp.Violations = append([]Violation(nil), v...)
	return &cp
}

// Sentinels reported by the persistence gateway. Handlers branch on these
// with errors.Is; clients only ever see the mapped kind.
var (
	// ErrVehicleNotFound is returned when a VIN matches no row.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrDuplicateVIN is returned when an insert trips the unique key on
	// vin. It still maps to KindPersistence at the boundary; the sentinel
	// exists so logs can tell collisions from outages.
	ErrDuplicateVIN = errors.New("duplicate vin")
)
