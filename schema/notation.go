package schema

import (
	"strings"

	"github.com/katalvlaran/dataverify/verifier"
)

const (
	arrayOpen  = "array<"
	arrayClose = ">"
)

// ParseType builds a verifier from its notation, e.g. "number?",
// "array<string>", "array<date!?>?". opts (such as verifier.WithLogger) are
// applied to every verifier built, nested element verifiers included.
//
// Grammar:
//
//	type := base ["!"] ["?"]
//	base := "string" | "number" | "boolean" | "date" | "object"
//	      | "array" | "array<" type ">" | "notnull" | "any"
//
// "!" is only legal on date; "?" is not legal on notnull.
func ParseType(s string, opts ...verifier.Option) (*verifier.Verifier, error) {
	src := s
	s = strings.TrimSpace(s)

	nullable := strings.HasSuffix(s, "?")
	s = strings.TrimSpace(strings.TrimSuffix(s, "?"))
	strict := strings.HasSuffix(s, "!")
	s = strings.TrimSpace(strings.TrimSuffix(s, "!"))

	var own []verifier.Option
	kind := verifier.KindArray
	if strings.HasPrefix(s, arrayOpen) && strings.HasSuffix(s, arrayClose) {
		inner := s[len(arrayOpen) : len(s)-len(arrayClose)]
		elem, err := ParseType(inner, opts...)
		if err != nil {
			return nil, err
		}
		own = append(own, verifier.WithElement(elem))
	} else {
		var ok bool
		if kind, ok = verifier.ParseKind(s); !ok {
			return nil, invalid(ErrBadNotation, "%q", src)
		}
	}

	if strict {
		if kind != verifier.KindDate {
			return nil, invalid(ErrBadNotation, "%q: '!' applies to date only", src)
		}
		own = append(own, verifier.WithStrictDateGuard())
	}
	if nullable && kind == verifier.KindNotNull {
		return nil, invalid(ErrBadNotation, "%q: notnull cannot be nullable", src)
	}

	return verifier.New(kind, nullable, append(own, opts...)...), nil
}

// MustParseType is ParseType that panics on error; for package-level schema literals.
func MustParseType(s string, opts ...verifier.Option) *verifier.Verifier {
	v, err := ParseType(s, opts...)
	if err != nil {
		panic(err)
	}

	return v
}
