package verifier

import (
	"fmt"
	"reflect"
	"time"

	"github.com/katalvlaran/dataverify/coerce"
)

// TypeOf returns a precise, JSON-flavoured type name for diagnostics:
// "null", "string", "number", "boolean", "date", "array", "object",
// "function", or the Go type for anything else.
func TypeOf(v any) string {
	if coerce.Absent(v) {
		return "null"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case time.Time, *time.Time:
		return "date"
	}
	if coerce.IsNumeric(v) {
		return "number"
	}
	if _, ok := coerce.AsSequence(v); ok {
		return "array"
	}
	if _, ok := coerce.AsRecord(v); ok {
		return "object"
	}
	if reflect.ValueOf(v).Kind() == reflect.Func {
		return "function"
	}

	return fmt.Sprintf("%T", v)
}
