package verifier

import "log/slog"

// Internal panic messages.
const (
	panicInvalidKind       = "verifier: New: kind is not a declared Kind"
	panicElementOnNonArray = "verifier: WithElement: only array verifiers carry an element verifier"
	panicStrictOnNonDate   = "verifier: WithStrictDateGuard: only date verifiers have a strict guard"
)

// Defaults.
const (
	// DefaultStrictDateGuard keeps the permissive date guard (any string).
	DefaultStrictDateGuard = false
)

// Option configures a Verifier at construction time. Options never apply
// after New returns.
type Option func(*options)

type options struct {
	strictDate bool
	elem       *Verifier
	logger     *slog.Logger
}

// WithStrictDateGuard makes Accepts on a date verifier parse string input
// instead of accepting any string. Panics on non-date kinds.
func WithStrictDateGuard() Option {
	return func(o *options) { o.strictDate = true }
}

// WithElement sets the element verifier of an array: every element must
// satisfy elem.Accepts. A nil elem is ignored. Panics on non-array kinds.
func WithElement(elem *Verifier) Option {
	return func(o *options) {
		if elem != nil {
			o.elem = elem
		}
	}
}

// WithLogger sets the logger used for discouraged coercions. A nil logger
// is ignored and slog.Default() is used at call time.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(kind Kind, opts []Option) options {
	o := options{strictDate: DefaultStrictDateGuard}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.elem != nil && kind != KindArray {
		panic(panicElementOnNonArray)
	}
	if o.strictDate && kind != KindDate {
		panic(panicStrictOnNonDate)
	}

	return o
}
