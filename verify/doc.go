// Package verify is the schema walker: it checks a raw key-value record
// against a schema.Branch and returns a verified record of the same shape.
//
// What:
//
//   - Verify(raw, root) walks root's fields in declaration order. Leaves run
//     their verifier's Transform on raw[key]; branches recurse into the nested
//     record at raw[key].
//   - The first failure aborts the walk and is returned as a *fault.Error;
//     no partial output is ever returned.
//   - A malformed schema is rejected with fault.ErrSchemaInvalid before any
//     input is read.
//
// Guarantees on success:
//
//   - The output has exactly the schema's keys at every nesting level.
//   - Non-nullable leaves hold a value of their declared type; nullable
//     leaves hold that type or nil.
//   - raw is never mutated.
//
// Reuse:
//
//	var signup = verify.MustCompile(schema.Object(
//	  schema.Key("name", verifier.String()),
//	  schema.Key("age", verifier.NumberNull()),
//	))
//
//	func handle(raw map[string]any) error {
//	  rec, err := signup.Verify(raw)
//	  ...
//	}
//
// A Checker holds only immutable data; any number of goroutines may call
// Verify on it concurrently. VerifyBatch fans a slice of records out over an
// errgroup and stops at the first failure.
//
// Complexity: O(total schema fields + total element checks), recursion depth
// equal to schema nesting depth.
package verify
