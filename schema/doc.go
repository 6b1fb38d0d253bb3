// Package schema declares the shape a raw record must have.
//
// A schema is a tree of Nodes:
//
//   - a leaf is a *verifier.Verifier;
//   - a Branch is an ordered list of named Fields, each holding a Node.
//
// Declaration order is significant only for reporting: the walker visits
// fields in order and stops at the first failure. Names must be unique and
// non-empty. Schemas are immutable once built and safe to share between
// goroutines; build them once and reuse them for every call.
//
// Literal form:
//
//	user := schema.Object(
//	  schema.Key("name", verifier.String()),
//	  schema.Key("age", verifier.NumberNull()),
//	  schema.Key("addr", schema.Object(
//	    schema.Key("city", verifier.String()),
//	    schema.Key("zip", verifier.StringNull()),
//	  )),
//	)
//
// Notation form (ParseType) and YAML documents (DecodeYAML):
//
//	name: user
//	fields:
//	  name: string
//	  age: number?
//	  tags: array<string>
//	  addr:
//	    city: string
//	    zip: string?
//
// Notation: kind names string, number, boolean, date, object, array,
// notnull, any; "array<T>" sets the element verifier; a trailing "!" on date
// selects the strict date guard; a trailing "?" marks the type nullable.
//
// Errors:
//
//   - Validate and DecodeYAML fail with a *fault.Error of KindSchemaInvalid
//     that also wraps one of ErrNotBranch, ErrNilNode, ErrEmptyName,
//     ErrDuplicateName, ErrUnknownNode, ErrBadNotation or ErrDocument.
package schema
