package fault

import (
	"errors"
	"fmt"
	"strings"
)

// NoIndex is the Index of an error raised outside a batch run.
const NoIndex = -1

// Error is a structured verification failure.
//
// Field is the leaf key that failed; Path is the dotted location of that key
// from the record root (equal to Field at the top level). Reason and Err carry
// optional diagnostics and never change the Kind.
type Error struct {
	Kind   Kind
	Field  string
	Path   string
	Index  int
	Reason string
	Err    error
}

// ParameterNull reports that a required field is absent.
func ParameterNull(field string) *Error {
	return &Error{Kind: KindParameterNull, Field: field, Path: field, Index: NoIndex}
}

// ParameterInvalid reports that a present field failed its type contract.
func ParameterInvalid(field string) *Error {
	return &Error{Kind: KindParameterInvalid, Field: field, Path: field, Index: NoIndex}
}

// Invalid is ParameterInvalid with the underlying cause attached.
func Invalid(field string, cause error) *Error {
	e := ParameterInvalid(field)
	e.Err = cause
	if cause != nil {
		e.Reason = cause.Error()
	}

	return e
}

// SchemaInvalid reports a malformed schema. reason is formatted with args.
func SchemaInvalid(reason string, args ...any) *Error {
	if len(args) > 0 {
		reason = fmt.Sprintf(reason, args...)
	}

	return &Error{Kind: KindSchemaInvalid, Reason: reason, Index: NoIndex}
}

// Message returns the client-facing sentence for the failure.
func (e *Error) Message() string {
	switch e.Kind {
	case KindParameterNull:
		if e.Field == "" {
			return "Necessary parameter is not provided."
		}
		return "Necessary parameter " + e.Field + " is not provided."
	case KindParameterInvalid:
		if e.Field == "" {
			return "Parameter is invalid."
		}
		return "Parameter " + e.Field + " is invalid."
	case KindSchemaInvalid:
		return "verification type is invalid"
	default:
		return "unknown failure"
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	if e.Index != NoIndex {
		fmt.Fprintf(&sb, "record %d: ", e.Index)
	}
	sb.WriteString(e.Message())
	if e.Path != "" && e.Path != e.Field {
		sb.WriteString(" (at " + e.Path + ")")
	}
	if e.Reason != "" {
		sb.WriteString(" [" + e.Reason + "]")
	}

	return sb.String()
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status the boundary layer should answer with.
func (e *Error) Status() int {
	if e.Kind == KindSchemaInvalid || e.Kind == KindUnknown {
		return StatusInternalServerError
	}

	return StatusBadRequest
}

// Code returns the stable client-facing code.
func (e *Error) Code() string { return e.Kind.String() }

// Within returns a copy of err whose Path is prefixed with segment.
// Non-*Error values are returned unchanged.
func Within(err error, segment string) error {
	var fe *Error
	if !errors.As(err, &fe) {
		return err
	}
	cp := *fe
	if cp.Path == "" {
		cp.Path = segment
	} else {
		cp.Path = segment + "." + cp.Path
	}

	return &cp
}

// AtIndex returns a copy of err tagged with a batch record index.
func AtIndex(err error, index int) error {
	var fe *Error
	if !errors.As(err, &fe) {
		return err
	}
	cp := *fe
	cp.Index = index

	return &cp
}

// KindOf returns the Kind of err, or KindUnknown when err is not a *Error.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}

	return KindUnknown
}

// FieldOf returns the offending field name of err, or "".
func FieldOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Field
	}

	return ""
}

// StatusOf maps any error to an HTTP status; foreign errors map to 500.
func StatusOf(err error) int {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Status()
	}

	return StatusInternalServerError
}
