// Package fault defines the failure taxonomy raised by the verification engine.
//
// What:
//
//   - ParameterNull:    a non-nullable leaf found no value (missing key or nil).
//   - ParameterInvalid: a present value failed its verifier's guard or coercion.
//   - SchemaInvalid:    the schema itself is malformed (programmer error).
//
// Every failure is a *Error carrying its Kind, the offending Field (leaf key),
// the dotted Path from the record root and, for batch runs, the record Index.
// Callers match kinds with errors.Is against the package sentinels:
//
//	out, err := verify.Verify(raw, s)
//	switch {
//	case errors.Is(err, fault.ErrParameterNull):
//	  // 400 PARAMETER_NOT_PROVIDED
//	case errors.Is(err, fault.ErrParameterInvalid):
//	  // 400 PARAMETER_INVALID
//	case errors.Is(err, fault.ErrSchemaInvalid):
//	  // 500, fix the schema
//	}
//
// Status and Code expose the client-facing mapping used by the HTTP boundary
// layer; this package never writes responses itself.
package fault
