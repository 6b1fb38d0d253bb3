// Package coerce holds the coercion policies shared by the type verifiers:
// the rules that turn loosely-typed input (usually a string taken from a
// query string, path parameter or form body) into a strongly-typed value.
//
// Policies:
//
//   - Number:   Go numeric kinds and json.Number widen to float64; strings are
//     parsed as floating point. NaN is never a number.
//   - Boolean:  bool passes through; only the exact strings "true" and "false"
//     coerce.
//   - Date:     time.Time passes through; strings are parsed against a fixed
//     layout list (see Layouts); numbers are Unix milliseconds.
//   - Record:   a JSON-encoded object string decodes to map[string]any.
//   - Sequence: a JSON-encoded array string decodes to []any; when direct
//     decoding fails, the string is wrapped in brackets and decoded again,
//     so "1,2" yields [1 2].
//
// AsRecord and AsSequence normalise arbitrary Go maps and slices to the
// map[string]any / []any shapes the engine emits.
//
// Every function is pure and safe for concurrent use. Failures wrap one of
// the package sentinels (ErrNotNumber, ErrNotBoolean, ErrNotDate,
// ErrNotRecord, ErrNotSequence) so callers can match them with errors.Is.
package coerce
