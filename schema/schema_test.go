package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dataverify/fault"
	"github.com/katalvlaran/dataverify/schema"
	"github.com/katalvlaran/dataverify/verifier"
)

//----------------------------------------------------------------------------//
// Validate
//----------------------------------------------------------------------------//

type foreignNode struct{}

func (foreignNode) IsLeaf() bool { return true }

// TestValidate_Errors verifies every malformed shape is a SchemaInvalid fault
// wrapping the matching schema sentinel.
func TestValidate_Errors(t *testing.T) {
	var nilVerifier *verifier.Verifier
	cases := []struct {
		name string
		root schema.Node
		err  error
	}{
		{"NilRoot", nil, schema.ErrNotBranch},
		{"LeafRoot", verifier.String(), schema.ErrNotBranch},
		{"EmptyName", schema.Object(schema.Key("", verifier.String())), schema.ErrEmptyName},
		{"Duplicate", schema.Object(
			schema.Key("a", verifier.String()),
			schema.Key("a", verifier.Number()),
		), schema.ErrDuplicateName},
		{"NilNode", schema.Object(schema.Key("a", nil)), schema.ErrNilNode},
		{"NilVerifier", schema.Object(schema.Key("a", nilVerifier)), schema.ErrNilNode},
		{"Foreign", schema.Object(schema.Key("a", foreignNode{})), schema.ErrUnknownNode},
		{"NestedDuplicate", schema.Object(schema.Key("addr", schema.Object(
			schema.Key("city", verifier.String()),
			schema.Key("city", verifier.String()),
		))), schema.ErrDuplicateName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := schema.Validate(tc.root)
			require.Error(t, err)
			assert.ErrorIs(t, err, fault.ErrSchemaInvalid)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, 500, fault.StatusOf(err))
		})
	}
}

// TestValidate_OK accepts nested and empty branches.
func TestValidate_OK(t *testing.T) {
	require.NoError(t, schema.Validate(schema.Object()))
	require.NoError(t, schema.Validate(schema.Object(
		schema.Key("name", verifier.String()),
		schema.Key("addr", schema.Object(schema.Key("zip", verifier.StringNull()))),
	)))
}

// TestValidate_DuplicateReportsPath checks the nested path in the reason.
func TestValidate_DuplicateReportsPath(t *testing.T) {
	err := schema.Validate(schema.Object(schema.Key("addr", schema.Object(
		schema.Key("city", verifier.String()),
		schema.Key("city", verifier.String()),
	))))

	var fe *fault.Error
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Reason, `"addr.city"`)
}

//----------------------------------------------------------------------------//
// Branch helpers
//----------------------------------------------------------------------------//

func TestBranchHelpers(t *testing.T) {
	b := schema.FromMap(map[string]schema.Node{
		"zeta":  verifier.Any(),
		"alpha": verifier.String(),
		"mid":   schema.Object(schema.Key("x", verifier.NumberNull())),
	})
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, b.Names())
	assert.False(t, b.IsLeaf())

	n, ok := b.Lookup("mid")
	require.True(t, ok)
	assert.False(t, n.IsLeaf())
	_, ok = b.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, "{alpha: string, mid: {x: number?}, zeta: any}", b.String())
	assert.Equal(t, "{a: <nil>}", schema.Object(schema.Key("a", nil)).String())
}

//----------------------------------------------------------------------------//
// ParseType
//----------------------------------------------------------------------------//

func TestParseType(t *testing.T) {
	ok := []string{
		"string", "string?", "number", "number?", "boolean", "boolean?",
		"date", "date?", "date!", "date!?", "object", "object?",
		"array", "array?", "array<string>", "array<number?>?",
		"array<array<date!>>", "notnull", "any",
	}
	for _, s := range ok {
		v, err := schema.ParseType(s)
		require.NoError(t, err, "%q", s)
		assert.Equal(t, s, v.String(), "notation must round-trip")
	}

	v, err := schema.ParseType("  number ? ")
	require.NoError(t, err)
	assert.Equal(t, "number?", v.String())

	bad := []string{"", "str", "uuid", "string!", "array<>", "array<str>", "array<string", "notnull?", "array!"}
	for _, s := range bad {
		_, err := schema.ParseType(s)
		assert.ErrorIs(t, err, fault.ErrSchemaInvalid, "%q", s)
		assert.ErrorIs(t, err, schema.ErrBadNotation, "%q", s)
	}

	assert.Panics(t, func() { schema.MustParseType("nope") })
	assert.Equal(t, verifier.KindDate, schema.MustParseType("date").Kind())
}

//----------------------------------------------------------------------------//
// YAML documents
//----------------------------------------------------------------------------//

const signupYAML = `
name: signup
description: new account payload
version: 1.2.0
fields:
  name: string
  age: number?
  tags: array<string>
  addr:
    city: string
    zip: string?
  born: date!?
`

type DocumentSuite struct {
	suite.Suite
	doc *schema.Document
}

func (s *DocumentSuite) SetupTest() {
	doc, err := schema.DecodeYAML([]byte(signupYAML))
	s.Require().NoError(err)
	s.doc = doc
}

func (s *DocumentSuite) TestHeader() {
	s.Equal("signup", s.doc.Name)
	s.Equal("new account payload", s.doc.Description)
	s.Equal("1.2.0", s.doc.Version)
}

func (s *DocumentSuite) TestFieldsKeepDocumentOrder() {
	s.Equal([]string{"name", "age", "tags", "addr", "born"}, s.doc.Fields.Names())
	s.Equal("{name: string, age: number?, tags: array<string>, addr: {city: string, zip: string?}, born: date!?}",
		s.doc.Fields.String())
}

func (s *DocumentSuite) TestMarshalRoundTrip() {
	out, err := yaml.Marshal(s.doc)
	s.Require().NoError(err)

	again, err := schema.DecodeYAML(out)
	s.Require().NoError(err, "rendered:\n%s", out)
	s.Equal(s.doc.Fields.String(), again.Fields.String())
	s.Equal(s.doc.Name, again.Name)
	s.Equal(s.doc.Version, again.Version)
}

func (s *DocumentSuite) TestReadFile() {
	path := filepath.Join(s.T().TempDir(), "signup.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(signupYAML), 0o600))

	doc, err := schema.ReadFile(path)
	s.Require().NoError(err)
	s.Equal(s.doc.Fields.String(), doc.Fields.String())

	_, err = schema.ReadFile(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Require().Error(err)
	s.ErrorIs(err, os.ErrNotExist)
}

func TestDocumentSuite(t *testing.T) {
	suite.Run(t, new(DocumentSuite))
}

// TestDecodeYAML_Errors covers malformed documents.
func TestDecodeYAML_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Empty", ``, schema.ErrDocument},
		{"NotMapping", `- a`, schema.ErrDocument},
		{"Syntax", "name: [", schema.ErrDocument},
		{"NoFields", "name: x", schema.ErrDocument},
		{"FieldsList", "name: x\nfields: [a]", schema.ErrDocument},
		{"NoName", "fields:\n  a: string", schema.ErrDocument},
		{"NoFieldsInside", "name: x\nfields: {}", schema.ErrDocument},
		{"BadVersion", "name: x\nversion: one\nfields:\n  a: string", schema.ErrDocument},
		{"BadNotation", "name: x\nfields:\n  a: strng", schema.ErrBadNotation},
		{"NullType", "name: x\nfields:\n  a:", schema.ErrBadNotation},
		{"SequenceType", "name: x\nfields:\n  a: [string]", schema.ErrDocument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schema.DecodeYAML([]byte(tc.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, fault.ErrSchemaInvalid)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestDecodeYAML_Aliases resolves YAML anchors for shared sub-shapes.
func TestDecodeYAML_Aliases(t *testing.T) {
	src := `
name: order
fields:
  billing: &addr
    city: string
    zip: string?
  shipping: *addr
`
	doc, err := schema.DecodeYAML([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "{billing: {city: string, zip: string?}, shipping: {city: string, zip: string?}}",
		doc.Fields.String())
}

// TestDecodeYAML_MergeKeys splices "<<" mappings into the branch; explicit
// keys override merged ones.
func TestDecodeYAML_MergeKeys(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"Single", `
name: order
base: &base
  city: string
  zip: string
fields:
  addr:
    <<: *base
    zip: string?
    country: string
`, "{addr: {city: string, zip: string?, country: string}}"},
		{"Sequence", `
name: order
a: &a {city: string, zip: number}
b: &b {zip: string, street: string?}
fields:
  addr:
    <<: [*a, *b]
`, "{addr: {city: string, zip: number, street: string?}}"},
		{"TopLevel", `
name: order
common: &common {id: number}
fields:
  <<: *common
  note: string?
`, "{id: number, note: string?}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := schema.DecodeYAML([]byte(tc.src))
			require.NoError(t, err)
			assert.Equal(t, tc.want, doc.Fields.String())
			_, ok := doc.Fields.Lookup("<<")
			assert.False(t, ok)
		})
	}

	_, err := schema.DecodeYAML([]byte("name: order\nfields:\n  addr:\n    <<: string\n"))
	assert.ErrorIs(t, err, schema.ErrDocument)
}
