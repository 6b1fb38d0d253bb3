package schema

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dataverify/verifier"
)

// Document is a named schema loaded from (or rendered to) YAML.
type Document struct {
	Name        string `yaml:"name" validate:"required,max=128"`
	Description string `yaml:"description,omitempty" validate:"max=1024"`
	Version     string `yaml:"version,omitempty" validate:"omitempty,semver"`
	Fields      Branch `yaml:"-" validate:"min=1"`
}

// header mirrors Document for decoding; fields stay raw so that mapping
// order survives as declaration order.
type header struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Version     string    `yaml:"version"`
	Fields      yaml.Node `yaml:"fields"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeYAML parses a schema document. opts are passed to every verifier
// built from the document's notation strings.
//
// Implementation:
//   - Stage 1: decode into a yaml.Node tree; the root must be a mapping.
//   - Stage 2: decode the header (name, description, version) and walk the
//     "fields" mapping in document order, building leaves with ParseType and
//     branches recursively.
//   - Stage 3: validate the header with struct tags and the tree with Validate.
//
// Every failure is a *fault.Error of KindSchemaInvalid.
func DecodeYAML(data []byte, opts ...verifier.Option) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, invalid(ErrDocument, "%v", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, invalid(ErrDocument, "empty document")
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, invalid(ErrDocument, "line %d: document must be a mapping", top.Line)
	}

	var h header
	if err := top.Decode(&h); err != nil {
		return nil, invalid(ErrDocument, "%v", err)
	}
	if h.Fields.Kind != yaml.MappingNode {
		return nil, invalid(ErrDocument, "fields must be a mapping")
	}
	fields, err := decodeBranch(&h.Fields, "", opts)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Name:        h.Name,
		Description: h.Description,
		Version:     h.Version,
		Fields:      fields,
	}
	if err := validate.Struct(doc); err != nil {
		return nil, invalid(ErrDocument, "%v", err)
	}
	if err := Validate(doc.Fields); err != nil {
		return nil, err
	}

	return doc, nil
}

// ReadFile loads a schema document from disk.
func ReadFile(path string, opts ...verifier.Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}

	return DecodeYAML(data, opts...)
}

// decodeBranch walks a mapping in document order. A merge key ("<<: *base"
// or "<<: [*a, *b]") splices the referenced mappings' fields in place;
// explicit keys of n win over merged ones, and earlier merge sources win
// over later ones.
func decodeBranch(n *yaml.Node, path string, opts []verifier.Option) (Branch, error) {
	explicit := make(map[string]struct{}, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		if k := n.Content[i]; !isMergeKey(k) {
			explicit[k.Value] = struct{}{}
		}
	}

	b := make(Branch, 0, len(n.Content)/2)
	merged := make(map[string]struct{})
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, invalid(ErrDocument, "line %d: field names must be scalars", k.Line)
		}
		if isMergeKey(k) {
			srcs, err := mergeSources(v, path)
			if err != nil {
				return nil, err
			}
			for _, src := range srcs {
				sub, err := decodeBranch(src, path, opts)
				if err != nil {
					return nil, err
				}
				for _, f := range sub {
					_, own := explicit[f.Name]
					_, seen := merged[f.Name]
					if own || seen {
						continue
					}
					merged[f.Name] = struct{}{}
					b = append(b, f)
				}
			}
			continue
		}

		at := join(path, k.Value)
		v = resolveAlias(v)
		switch v.Kind {
		case yaml.ScalarNode:
			leaf, err := ParseType(v.Value, opts...)
			if err != nil {
				return nil, invalid(ErrBadNotation, "%s (line %d): %q", at, v.Line, v.Value)
			}
			b = append(b, Field{Name: k.Value, Node: leaf})
		case yaml.MappingNode:
			sub, err := decodeBranch(v, at, opts)
			if err != nil {
				return nil, err
			}
			b = append(b, Field{Name: k.Value, Node: sub})
		default:
			return nil, invalid(ErrDocument, "%s (line %d): expected a type or a mapping", at, v.Line)
		}
	}

	return b, nil
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge"
}

// mergeSources returns the mappings a merge value refers to, in precedence order.
func mergeSources(v *yaml.Node, path string) ([]*yaml.Node, error) {
	v = resolveAlias(v)
	switch v.Kind {
	case yaml.MappingNode:
		return []*yaml.Node{v}, nil
	case yaml.SequenceNode:
		srcs := make([]*yaml.Node, 0, len(v.Content))
		for _, item := range v.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.MappingNode {
				return nil, invalid(ErrDocument, "%s (line %d): merge sequence must hold mappings",
					displayPath(path), item.Line)
			}
			srcs = append(srcs, item)
		}
		return srcs, nil
	default:
		return nil, invalid(ErrDocument, "%s (line %d): merge value must be a mapping",
			displayPath(path), v.Line)
	}
}

func resolveAlias(v *yaml.Node) *yaml.Node {
	for v.Kind == yaml.AliasNode && v.Alias != nil {
		v = v.Alias
	}

	return v
}

// MarshalYAML renders the document with fields in declaration order.
func (d Document) MarshalYAML() (any, error) {
	fields, err := encodeBranch(d.Fields)
	if err != nil {
		return nil, err
	}
	n := &yaml.Node{Kind: yaml.MappingNode}
	appendPair(n, "name", scalar(d.Name))
	if d.Description != "" {
		appendPair(n, "description", scalar(d.Description))
	}
	if d.Version != "" {
		appendPair(n, "version", scalar(d.Version))
	}
	appendPair(n, "fields", fields)

	return n, nil
}

func encodeBranch(b Branch) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range b {
		switch x := f.Node.(type) {
		case Branch:
			sub, err := encodeBranch(x)
			if err != nil {
				return nil, err
			}
			appendPair(n, f.Name, sub)
		case *verifier.Verifier:
			if x == nil {
				return nil, invalid(ErrNilNode, "%q", f.Name)
			}
			appendPair(n, f.Name, scalar(x.String()))
		default:
			return nil, invalid(ErrUnknownNode, "%q holds %T", f.Name, f.Node)
		}
	}

	return n, nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func appendPair(m *yaml.Node, key string, val *yaml.Node) {
	m.Content = append(m.Content, scalar(key), val)
}
