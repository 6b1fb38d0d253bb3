package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// MaxUnixMillis bounds numeric dates: ±8.64e15 ms (±100,000,000 days
// around the epoch).
const MaxUnixMillis = 8.64e15

// Layouts lists the string date formats accepted by Date, tried in order.
var Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// Absent reports whether v stands for "no value": untyped nil or a nil
// pointer. Empty strings, zero numbers and empty collections are present
// values, and so are typed nil maps and slices.
func Absent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// IsNumeric reports whether v already holds a numeric value (any Go int,
// uint or float kind, or json.Number). NaN is not numeric.
func IsNumeric(v any) bool {
	switch n := v.(type) {
	case float64:
		return !math.IsNaN(n)
	case float32:
		return !math.IsNaN(float64(n))
	case json.Number:
		_, err := n.Float64()
		return err == nil
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// Number coerces v to float64.
//
// Numeric kinds widen; strings are trimmed and parsed with strconv.ParseFloat.
// Anything else, and any NaN result, fails with ErrNotNumber.
// Complexity: O(len(s)) for strings, O(1) otherwise.
func Number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return 0, fmt.Errorf("%w: NaN", ErrNotNumber)
		}
		return n, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumber, string(n))
		}
		return f, nil
	case string:
		return parseNumber(n)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32:
		f := rv.Float()
		if math.IsNaN(f) {
			return 0, fmt.Errorf("%w: NaN", ErrNotNumber)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotNumber, v)
	}
}

func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, s)
	}

	return f, nil
}

// Boolean coerces v to bool. Only bool values and the exact strings
// "true" and "false" succeed; "TRUE", "1" or "yes" fail with ErrNotBoolean.
func Boolean(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch b {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return false, fmt.Errorf("%w: %q", ErrNotBoolean, b)
	default:
		return false, fmt.Errorf("%w: %T", ErrNotBoolean, v)
	}
}

// Date constructs a time.Time from v.
//
// time.Time (and *time.Time) pass through. Strings are matched against
// Layouts in order. Numbers are read as Unix milliseconds and must lie
// within ±MaxUnixMillis. A failed construction is ErrNotDate, never a
// silent zero or wrapped time.
func Date(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case *time.Time:
		if d == nil {
			return time.Time{}, fmt.Errorf("%w: nil", ErrNotDate)
		}
		return *d, nil
	case string:
		return parseDate(d)
	}
	if IsNumeric(v) {
		ms, err := Number(v)
		if err != nil || math.IsInf(ms, 0) || math.Abs(ms) > MaxUnixMillis {
			return time.Time{}, fmt.Errorf("%w: %v", ErrNotDate, v)
		}
		return time.UnixMilli(int64(ms)).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("%w: %T", ErrNotDate, v)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrNotDate)
	}
	for _, layout := range Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrNotDate, s)
}
