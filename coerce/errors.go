package coerce

import "errors"

// Sentinel errors for coercion failures.
var (
	// ErrNotNumber indicates the value is not numeric or parses to NaN.
	ErrNotNumber = errors.New("coerce: not a number")

	// ErrNotBoolean indicates the value is neither a bool nor "true"/"false".
	ErrNotBoolean = errors.New("coerce: not a boolean")

	// ErrNotDate indicates the value cannot be constructed into a valid date.
	ErrNotDate = errors.New("coerce: not a valid date")

	// ErrNotRecord indicates the string does not decode to a JSON object.
	ErrNotRecord = errors.New("coerce: not a JSON object")

	// ErrNotSequence indicates the string does not decode to a JSON array,
	// even after bracket wrapping.
	ErrNotSequence = errors.New("coerce: not a JSON array")
)
