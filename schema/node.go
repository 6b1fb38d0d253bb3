package schema

import (
	"sort"
	"strings"

	"github.com/katalvlaran/dataverify/verifier"
)

// Node is a schema tree node: a *verifier.Verifier leaf or a Branch.
type Node interface {
	IsLeaf() bool
}

// Field binds a record key to a Node.
type Field struct {
	Name string
	Node Node
}

// Branch is an ordered mapping from field name to Node.
type Branch []Field

var _ Node = Branch(nil)
var _ Node = (*verifier.Verifier)(nil)

// IsLeaf reports false: a Branch always nests further.
func (b Branch) IsLeaf() bool { return false }

// Key builds a Field.
func Key(name string, node Node) Field { return Field{Name: name, Node: node} }

// Object builds a Branch from fields, in the given order.
func Object(fields ...Field) Branch { return Branch(fields) }

// FromMap builds a Branch from an unordered map literal. Fields are sorted
// by name so the walk order, and so the first reported error, is deterministic.
func FromMap(m map[string]Node) Branch {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	b := make(Branch, 0, len(names))
	for _, name := range names {
		b = append(b, Field{Name: name, Node: m[name]})
	}

	return b
}

// Names returns the field names in declaration order.
func (b Branch) Names() []string {
	names := make([]string, len(b))
	for i, f := range b {
		names[i] = f.Name
	}

	return names
}

// Lookup returns the node bound to name.
// Complexity: O(len(b)).
func (b Branch) Lookup(name string) (Node, bool) {
	for _, f := range b {
		if f.Name == name {
			return f.Node, true
		}
	}

	return nil, false
}

// String renders the branch in notation, e.g. "{name: string, addr: {city: string}}".
func (b Branch) String() string {
	var sb strings.Builder
	b.describe(&sb)

	return sb.String()
}

func (b Branch) describe(sb *strings.Builder) {
	sb.WriteByte('{')
	for i, f := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		switch n := f.Node.(type) {
		case Branch:
			n.describe(sb)
		case *verifier.Verifier:
			if n == nil {
				sb.WriteString("<nil>")
			} else {
				sb.WriteString(n.String())
			}
		case nil:
			sb.WriteString("<nil>")
		default:
			sb.WriteString("<unknown>")
		}
	}
	sb.WriteByte('}')
}
