package schema

import "fmt"

// ValidationError reports a value that did not match its declared type.
// When the failing value was a composite (list, map, object), Partial holds
// whatever could still be decoded, so callers that tolerate schema drift can
// keep the usable part of a response.
type ValidationError struct {
	Msg     string
	Partial interface{}
	cause   error
}

func (e *ValidationError) Error() string { return e.Msg }

// Cause returns the underlying error, if any.
func (e *ValidationError) Cause() error { return e.cause }

func (e *ValidationError) Unwrap() error { return e.cause }

func errf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Partial extracts the partially decoded value carried by err, if any.
func Partial(err error) (interface{}, bool) {
	if verr, ok := err.(*ValidationError); ok && verr.Partial != nil {
		return verr.Partial, true
	}
	return nil, false
}

// MissingFieldError reports a required field that was not present in
// the raw data a typed object was decoded from.
type MissingFieldError struct {
	Shape string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Shape, e.Field)
}

// errNoDefault is returned by Default for types that may not be omitted.
// Shape.Decode translates it into a MissingFieldError with field context.
type noDefaultError struct{ typeName string }

func (e *noDefaultError) Error() string {
	return fmt.Sprintf("no default value for %s", e.typeName)
}
