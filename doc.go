// Package dataverify is a schema-driven verification and coercion engine
// for loosely-typed request data.
//
// 🚀 What is dataverify?
//
//	A small, dependency-light library that takes a raw key-value record (the
//	union of path parameters, query parameters and a parsed body) and a
//	schema, and returns a verified record of the same nested shape:
//		• Type verifiers: string, number, boolean, date, object, array,
//		  not-null and any, each nullable or not
//		• Coercion: "42" → 42, "true" → true, "2024-01-02" → time.Time,
//		  `["a","b"]` → []any{"a","b"}, `{"k":1}` → map[string]any
//		• Recursive walk: nested branches mirror nested payloads
//		• Fail fast: the first failure aborts with a structured *fault.Error
//
// ✨ Why dataverify?
//
//   - Schemas are plain Go literals or YAML documents, built once and shared
//   - Three failure kinds only: parameter missing, parameter invalid, schema invalid
//   - Immutable verifiers: safe for concurrent use without locks
//
// Packages:
//
//	coerce/   coercion policies (string → number/bool/date/array/object)
//	fault/    failure taxonomy, client-facing status and code
//	schema/   Branch/Field/leaf tree, type notation, YAML documents
//	verifier/ per-kind Verifier with Accepts and Transform
//	verify/   the schema walker: Verify, Compile, VerifyBatch
//
// Quick example:
//
//	s := schema.Object(
//	  schema.Key("name", verifier.String()),
//	  schema.Key("age", verifier.NumberNull()),
//	)
//	out, err := verify.Verify(map[string]any{"name": "Ann", "age": "42"}, s)
//	// out == map[string]any{"name": "Ann", "age": 42.0}
//
//	go get github.com/katalvlaran/dataverify
package dataverify
