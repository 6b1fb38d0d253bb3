package verifier

// Kind enumerates the primitive kinds a leaf can declare.
type Kind int

const (
	// KindInvalid is the zero Kind and is never produced by a constructor.
	KindInvalid Kind = iota
	// KindString is a non-empty string.
	KindString
	// KindNumber is a float64.
	KindNumber
	// KindBoolean is a bool.
	KindBoolean
	// KindDate is a time.Time.
	KindDate
	// KindObject is a map[string]any.
	KindObject
	// KindArray is a []any.
	KindArray
	// KindNotNull is any present value.
	KindNotNull
	// KindAny is any value, absent included.
	KindAny
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindString:  "string",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindDate:    "date",
	KindObject:  "object",
	KindArray:   "array",
	KindNotNull: "notnull",
	KindAny:     "any",
}

// String returns the notation name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}

	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k > KindInvalid && k <= KindAny }

// ParseKind resolves a notation name ("string", "number", ...) to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k := KindString; k <= KindAny; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}

	return KindInvalid, false
}
