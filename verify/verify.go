package verify

import (
	"log/slog"

	"github.com/katalvlaran/dataverify/coerce"
	"github.com/katalvlaran/dataverify/fault"
	"github.com/katalvlaran/dataverify/schema"
	"github.com/katalvlaran/dataverify/verifier"
)

// Checker is a validated schema ready to verify records.
type Checker struct {
	root schema.Branch
	opts options
}

// Compile validates root once and returns a reusable Checker.
// A malformed root fails with fault.ErrSchemaInvalid.
func Compile(root schema.Node, opts ...Option) (*Checker, error) {
	o := gatherOptions(opts)
	if err := schema.Validate(root); err != nil {
		o.logger.Error("verify: schema rejected", slog.Any("error", err))
		return nil, err
	}

	return &Checker{root: root.(schema.Branch), opts: o}, nil
}

// MustCompile is Compile that panics on a malformed schema.
func MustCompile(root schema.Node, opts ...Option) *Checker {
	c, err := Compile(root, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// Schema returns the compiled root.
func (c *Checker) Schema() schema.Branch { return c.root }

// Verify checks raw against root in one call. See Checker.Verify.
func Verify(raw map[string]any, root schema.Node, opts ...Option) (map[string]any, error) {
	c, err := Compile(root, opts...)
	if err != nil {
		return nil, err
	}

	return c.Verify(raw)
}

// Verify walks the schema over raw and returns the verified record.
// A nil raw behaves as an empty record.
//
// The verified record is built fresh: branches are new maps, and object and
// array leaves are shallow copies, so writing to them leaves raw intact.
// Values nested inside those leaves, and notnull or any leaves, are shared
// with raw.
func (c *Checker) Verify(raw map[string]any) (map[string]any, error) {
	out, err := walk(raw, c.root)
	if err != nil {
		c.opts.logger.Debug("verify: record rejected",
			slog.String("code", fault.KindOf(err).String()),
			slog.String("field", fault.FieldOf(err)))
		return nil, err
	}

	return out, nil
}

// walk resolves every field of b in declaration order, failing fast.
func walk(raw map[string]any, b schema.Branch) (map[string]any, error) {
	out := make(map[string]any, len(b))
	for _, f := range b {
		switch n := f.Node.(type) {
		case schema.Branch:
			nested, err := nestedRecord(raw[f.Name], f.Name)
			if err != nil {
				return nil, err
			}
			sub, err := walk(nested, n)
			if err != nil {
				return nil, fault.Within(err, f.Name)
			}
			out[f.Name] = sub

		case *verifier.Verifier:
			v, err := n.Transform(raw[f.Name], f.Name)
			if err != nil {
				return nil, err
			}
			out[f.Name] = v

		default:
			// unreachable after schema.Validate
			return nil, fault.SchemaInvalid("field %q holds %T", f.Name, f.Node)
		}
	}

	return out, nil
}

// nestedRecord extracts the raw record a branch recurses into. Absent is
// ParameterNull; a JSON object string is decoded; anything else is invalid.
func nestedRecord(v any, field string) (map[string]any, error) {
	if coerce.Absent(v) {
		return nil, fault.ParameterNull(field)
	}
	if m, ok := coerce.AsRecord(v); ok {
		return m, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fault.ParameterInvalid(field)
	}
	m, err := coerce.Record(s)
	if err != nil {
		return nil, fault.Invalid(field, err)
	}

	return m, nil
}
