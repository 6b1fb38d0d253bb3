// Package verifier implements the per-kind type verifiers of the engine.
//
// A *Verifier is an immutable value built once (usually at startup, as part
// of a schema literal) and shared freely across goroutines. It exposes:
//
//   - Accepts(v):           a pure type-guard: does v already satisfy the type?
//   - Transform(v, field):  coerce-or-validate; fails with a *fault.Error.
//
// Kinds form a closed enumeration, each available nullable and non-nullable:
//
//	Kind         Accepts                          Transform coerces from
//	KindString   non-empty string                 (nothing; "" is invalid)
//	KindNumber   Go numerics, json.Number         numeric strings
//	KindBoolean  bool                             "true" / "false"
//	KindDate     string or time.Time              date strings, Unix millis
//	KindObject   maps keyed by string             JSON object strings
//	KindArray    slices / arrays                  JSON array strings (discouraged)
//	KindNotNull  any present value                (pass-through)
//	KindAny      everything, including absent     (pass-through)
//
// Absent input (nil or a nil pointer) fails with fault.ParameterNull unless
// the verifier is nullable, in which case Transform yields nil.
//
// Options are resolved at construction: WithStrictDateGuard picks the date
// guard once, WithElement fixes the element verifier of an array, and
// WithLogger selects the slog.Logger used to flag arrays decoded from strings.
//
// Example:
//
//	tags := verifier.ArrayOf(verifier.String())
//	out, err := tags.Transform(`["a","b"]`, "tags") // []any{"a", "b"}
package verifier
