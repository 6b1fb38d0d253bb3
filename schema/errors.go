package schema

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dataverify/fault"
)

// Sentinel errors for malformed schemas. They are always delivered wrapped
// in a fault.Error of KindSchemaInvalid.
var (
	// ErrNotBranch indicates the schema root is not a Branch.
	ErrNotBranch = errors.New("schema: root must be a branch mapping")

	// ErrNilNode indicates a field holds a nil node or a nil verifier.
	ErrNilNode = errors.New("schema: nil node")

	// ErrEmptyName indicates a field with an empty name.
	ErrEmptyName = errors.New("schema: empty field name")

	// ErrDuplicateName indicates two fields of one branch share a name.
	ErrDuplicateName = errors.New("schema: duplicate field name")

	// ErrUnknownNode indicates a Node implementation the walker cannot interpret.
	ErrUnknownNode = errors.New("schema: unsupported node type")

	// ErrBadNotation indicates an unparsable type notation string.
	ErrBadNotation = errors.New("schema: bad type notation")

	// ErrDocument indicates a structurally invalid schema document.
	ErrDocument = errors.New("schema: invalid document")
)

// invalid wraps a formatted schema error into a SchemaInvalid fault.
func invalid(sentinel error, format string, args ...any) error {
	cause := fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
	e := fault.SchemaInvalid(cause.Error())
	e.Err = cause

	return e
}
