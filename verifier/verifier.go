package verifier

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/katalvlaran/dataverify/coerce"
	"github.com/katalvlaran/dataverify/fault"
)

// Verifier validates and coerces one leaf value. It is immutable once built
// and safe for concurrent use.
type Verifier struct {
	kind       Kind
	nullable   bool
	strictDate bool
	elem       *Verifier
	logger     *slog.Logger

	// guard is resolved from kind and options in New.
	guard func(any) bool
}

// New builds a verifier of the given kind. Panics if kind is not declared or
// an option does not fit the kind (programmer error).
// Complexity: O(1).
func New(kind Kind, nullable bool, opts ...Option) *Verifier {
	if !kind.Valid() {
		panic(panicInvalidKind)
	}
	o := gatherOptions(kind, opts)
	v := &Verifier{
		kind:       kind,
		nullable:   nullable || kind == KindAny,
		strictDate: o.strictDate,
		elem:       o.elem,
		logger:     o.logger,
	}
	v.guard = v.resolveGuard()

	return v
}

// Kind returns the declared kind.
func (v *Verifier) Kind() Kind { return v.kind }

// Nullable reports whether absent input resolves to nil instead of failing.
func (v *Verifier) Nullable() bool { return v.nullable }

// Elem returns the element verifier of an array, or nil.
func (v *Verifier) Elem() *Verifier { return v.elem }

// StrictDateGuard reports whether Accepts parses date strings.
func (v *Verifier) StrictDateGuard() bool { return v.strictDate }

// IsLeaf marks a verifier as a schema leaf.
func (v *Verifier) IsLeaf() bool { return true }

// Accepts reports whether value already satisfies the type. It never coerces
// or mutates value. Absent values are accepted only by nullable verifiers.
func (v *Verifier) Accepts(value any) bool {
	if coerce.Absent(value) {
		return v.nullable
	}

	return v.guard(value)
}

func (v *Verifier) resolveGuard() func(any) bool {
	switch v.kind {
	case KindString:
		return func(x any) bool {
			s, ok := x.(string)
			return ok && s != ""
		}
	case KindNumber:
		return coerce.IsNumeric
	case KindBoolean:
		return func(x any) bool {
			_, ok := x.(bool)
			return ok
		}
	case KindDate:
		if v.strictDate {
			return func(x any) bool {
				switch x.(type) {
				case time.Time, string:
					_, err := coerce.Date(x)
					return err == nil
				default:
					return false
				}
			}
		}
		return func(x any) bool {
			switch x.(type) {
			case time.Time, string:
				return true
			default:
				return false
			}
		}
	case KindObject:
		return func(x any) bool {
			_, ok := coerce.AsRecord(x)
			return ok
		}
	case KindArray:
		elem := v.elem
		return func(x any) bool {
			seq, ok := coerce.AsSequence(x)
			if !ok {
				return false
			}
			return elem == nil || firstRejected(elem, seq) < 0
		}
	case KindNotNull, KindAny:
		return func(any) bool { return true }
	default:
		panic(panicInvalidKind)
	}
}

// Transform coerces value into the verifier's type, or fails.
//
// Absent value: nil for nullable verifiers, fault.ParameterNull(field) otherwise.
// Present value that cannot be coerced: fault.ParameterInvalid(field) with the
// coercion cause attached. Object and array results are shallow copies of
// value; notnull and any return value itself.
func (v *Verifier) Transform(value any, field string) (any, error) {
	if coerce.Absent(value) {
		if v.nullable {
			return nil, nil
		}
		return nil, fault.ParameterNull(field)
	}

	switch v.kind {
	case KindString:
		if s, ok := value.(string); ok && s != "" {
			return s, nil
		}
		return nil, fault.ParameterInvalid(field)

	case KindNumber:
		f, err := coerce.Number(value)
		if err != nil {
			return nil, fault.Invalid(field, err)
		}
		return f, nil

	case KindBoolean:
		b, err := coerce.Boolean(value)
		if err != nil {
			return nil, fault.Invalid(field, err)
		}
		return b, nil

	case KindDate:
		t, err := coerce.Date(value)
		if err != nil {
			return nil, fault.Invalid(field, err)
		}
		return t, nil

	case KindObject:
		if m, ok := value.(map[string]any); ok {
			return maps.Clone(m), nil
		}
		if m, ok := coerce.AsRecord(value); ok {
			return m, nil
		}
		s, ok := value.(string)
		if !ok {
			return nil, fault.ParameterInvalid(field)
		}
		m, err := coerce.Record(s)
		if err != nil {
			return nil, fault.Invalid(field, err)
		}
		return m, nil

	case KindArray:
		return v.transformArray(value, field)

	case KindNotNull, KindAny:
		return value, nil

	default:
		return nil, fault.SchemaInvalid("unknown verifier kind %d", int(v.kind))
	}
}

func (v *Verifier) transformArray(value any, field string) (any, error) {
	seq, ok := coerce.AsSequence(value)
	if raw, isAny := value.([]any); isAny {
		seq = slices.Clone(raw)
	}
	if !ok {
		s, isString := value.(string)
		if !isString {
			return nil, fault.ParameterInvalid(field)
		}
		parsed, err := coerce.Sequence(s)
		if err != nil {
			return nil, fault.Invalid(field, err)
		}
		v.log().Warn("verifier: array decoded from string; send a JSON array instead",
			slog.String("field", field),
			slog.Int("length", len(parsed)))
		seq = parsed
	}
	if v.elem != nil {
		if i := firstRejected(v.elem, seq); i >= 0 {
			e := fault.ParameterInvalid(field)
			e.Reason = fmt.Sprintf("element %d is %s, want %s", i, TypeOf(seq[i]), v.elem)
			return nil, e
		}
	}

	return seq, nil
}

// firstRejected returns the index of the first element elem does not accept, or -1.
func firstRejected(elem *Verifier, seq []any) int {
	for i, x := range seq {
		if !elem.Accepts(x) {
			return i
		}
	}

	return -1
}

func (v *Verifier) log() *slog.Logger {
	if v.logger != nil {
		return v.logger
	}

	return slog.Default()
}

// String renders the verifier in schema notation, e.g. "number?",
// "array<string>" or "date!".
func (v *Verifier) String() string {
	var sb strings.Builder
	sb.WriteString(v.kind.String())
	if v.elem != nil {
		sb.WriteString("<" + v.elem.String() + ">")
	}
	if v.strictDate {
		sb.WriteByte('!')
	}
	if v.nullable && v.kind != KindAny {
		sb.WriteByte('?')
	}

	return sb.String()
}
