// Package validation turns raw request bodies into checked payload structs.
// Decode failures and rule failures come back as apperr values so handlers
// only ever forward them.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"infinite-experiment/motorpool/internal/apperr"
	"infinite-experiment/motorpool/internal/constants"
)

// bodyField names the whole payload in violations that cannot be pinned to
// a single field.
const bodyField = "body"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON reads exactly one JSON value from r into dst. Unparseable input
// maps to KindMalformedPayload, a parseable value of the wrong shape to
// KindSchemaInvalid.
func DecodeJSON(r io.Reader, dst any) *apperr.Error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = bodyField
			}
			return apperr.Wrap(apperr.KindSchemaInvalid, constants.MsgValidationFailed, err).
				WithViolations(apperr.Violation{
					Field:   field,
					Kind:    "invalid_type",
					Message: fmt.Sprintf("expected %s, got %s", expectedType(typeErr.Type), typeErr.Value),
				})
		}
		return malformed(err, parseMessage(err))
	}
	// A body like {...}garbage parses its first value fine; reject the rest.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return malformed(err, "request body must contain a single JSON value")
	}
	return nil
}

// Validate checks dst against its validate tags and reports every failing
// field at once.
func Validate(dst any) *apperr.Error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Wrap(apperr.KindSchemaInvalid, constants.MsgValidationFailed, err)
	}
	violations := make([]apperr.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, apperr.Violation{
			Field:   fe.Field(),
			Kind:    fe.Tag(),
			Message: ruleMessage(fe),
		})
	}
	return apperr.E(apperr.KindSchemaInvalid, constants.MsgValidationFailed).
		WithViolations(violations...)
}

// DecodeAndValidate is the handler entry point: decode r into dst, then run
// the tag rules. A type mismatch aborts decoding but leaves the other fields
// populated, so the rules still run and missing fields are reported alongside
// the mismatch instead of on a second round trip.
func DecodeAndValidate(r io.Reader, dst any) *apperr.Error {
	decErr := DecodeJSON(r, dst)
	if decErr == nil {
		return Validate(dst)
	}
	if decErr.Kind != apperr.KindSchemaInvalid || hasField(decErr.Violations, bodyField) {
		return decErr
	}
	valErr := Validate(dst)
	if valErr == nil {
		return decErr
	}
	merged := append([]apperr.Violation(nil), decErr.Violations...)
	for _, v := range valErr.Violations {
		if !hasField(merged, v.Field) {
			merged = append(merged, v)
		}
	}
	return decErr.WithViolations(merged...)
}

func malformed(cause error, msg string) *apperr.Error {
	return apperr.Wrap(apperr.KindMalformedPayload, constants.MsgMalformedJSON, cause).
		WithViolations(apperr.Violation{Field: bodyField, Kind: "parse_error", Message: msg})
}

func parseMessage(err error) string {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return "request body is empty"
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "unexpected end of JSON input"
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset)
	default:
		return "request body is not valid JSON"
	}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must have at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on rule %q", fe.Tag())
	}
}

func expectedType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return t.String()
	}
}

func hasField(vs []apperr.Violation, field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}
