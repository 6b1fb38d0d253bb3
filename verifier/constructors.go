package verifier

// String requires a non-empty string.
func String(opts ...Option) *Verifier { return New(KindString, false, opts...) }

// StringNull accepts a non-empty string or absent (nil).
func StringNull(opts ...Option) *Verifier { return New(KindString, true, opts...) }

// Number requires a number or a numeric string.
func Number(opts ...Option) *Verifier { return New(KindNumber, false, opts...) }

// NumberNull accepts a number, a numeric string or absent.
func NumberNull(opts ...Option) *Verifier { return New(KindNumber, true, opts...) }

// Boolean requires a bool or "true"/"false".
func Boolean(opts ...Option) *Verifier { return New(KindBoolean, false, opts...) }

// BooleanNull accepts a bool, "true"/"false" or absent.
func BooleanNull(opts ...Option) *Verifier { return New(KindBoolean, true, opts...) }

// Date requires a value constructible into a valid time.Time.
func Date(opts ...Option) *Verifier { return New(KindDate, false, opts...) }

// DateNull is the nullable Date.
func DateNull(opts ...Option) *Verifier { return New(KindDate, true, opts...) }

// Object requires a string-keyed map or a JSON object string.
func Object(opts ...Option) *Verifier { return New(KindObject, false, opts...) }

// ObjectNull is the nullable Object: absent or object-shaped.
func ObjectNull(opts ...Option) *Verifier { return New(KindObject, true, opts...) }

// Array requires a slice, or a string decodable as a JSON array.
func Array(opts ...Option) *Verifier { return New(KindArray, false, opts...) }

// ArrayNull is the nullable Array.
func ArrayNull(opts ...Option) *Verifier { return New(KindArray, true, opts...) }

// ArrayOf is Array whose every element must satisfy elem.Accepts.
func ArrayOf(elem *Verifier, opts ...Option) *Verifier {
	return New(KindArray, false, append([]Option{WithElement(elem)}, opts...)...)
}

// ArrayOfNull is the nullable ArrayOf.
func ArrayOfNull(elem *Verifier, opts ...Option) *Verifier {
	return New(KindArray, true, append([]Option{WithElement(elem)}, opts...)...)
}

// NotNull requires presence only and passes the value through unchanged.
func NotNull(opts ...Option) *Verifier { return New(KindNotNull, false, opts...) }

// Any accepts everything, absent included, and bypasses coercion.
func Any(opts ...Option) *Verifier { return New(KindAny, true, opts...) }
