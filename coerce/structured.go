package coerce

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Record decodes a JSON-encoded object string into map[string]any.
// Decoded numbers are float64. Arrays, scalars and null fail with ErrNotRecord.
func Record(s string) (map[string]any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotRecord, err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: decoded %T", ErrNotRecord, v)
	}

	return m, nil
}

// Sequence decodes a JSON-encoded array string into []any.
//
// Stage 1 decodes s directly. Only when that fails to parse, stage 2 wraps
// s in brackets ("[" + s + "]") and decodes again, so a bare list such as
// `1,2` or `"a","b"` is accepted. A string that parses but is not an array
// (e.g. `5`) fails without fallback.
func Sequence(s string) ([]any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		// fallback envelope
		var wrapped []any
		if err2 := json.Unmarshal([]byte("["+s+"]"), &wrapped); err2 != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotSequence, err)
		}
		return wrapped, nil
	}
	seq, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: decoded %T", ErrNotSequence, v)
	}

	return seq, nil
}

// AsRecord normalises v to map[string]any when v is a map keyed by strings.
// A map[string]any is returned as is (not copied); other map types are
// copied. The boolean is false for every non-map value.
func AsRecord(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}

	return out, true
}

// AsSequence normalises v to []any when v is a slice or array.
// []byte is treated as an opaque scalar, not a sequence.
func AsSequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	if _, isBytes := v.([]byte); isBytes {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}
