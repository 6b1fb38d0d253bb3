package verify_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dataverify/fault"
	"github.com/katalvlaran/dataverify/schema"
	"github.com/katalvlaran/dataverify/verifier"
	"github.com/katalvlaran/dataverify/verify"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Verify
////////////////////////////////////////////////////////////////////////////////

// ExampleVerify demonstrates verifying a merged query + body record.
// Scenario:
//
//   - "age" arrives from the query string as "42" and is coerced to 42.
//   - "addr.zip" is absent and nullable, so it resolves to nil.
//   - a second call misses "addr.city" and fails with its dotted path.
func ExampleVerify() {
	user := schema.Object(
		schema.Key("name", verifier.String()),
		schema.Key("age", verifier.NumberNull()),
		schema.Key("addr", schema.Object(
			schema.Key("city", verifier.String()),
			schema.Key("zip", verifier.StringNull()),
		)),
	)

	out, err := verify.Verify(map[string]any{
		"name": "Ann",
		"age":  "42",
		"addr": map[string]any{"city": "NYC"},
	}, user)
	fmt.Println(err)
	fmt.Println(out["age"], out["addr"])

	_, err = verify.Verify(map[string]any{
		"name": "Ann",
		"addr": map[string]any{},
	}, user)
	var fe *fault.Error
	if errors.As(err, &fe) {
		fmt.Println(fe.Status(), fe.Code(), fe.Path)
	}

	// Output:
	// <nil>
	// 42 map[city:NYC zip:<nil>]
	// 400 PARAMETER_NOT_PROVIDED addr.city
}

// ExampleMustCompile builds a reusable checker from a YAML document.
func ExampleMustCompile() {
	doc, err := schema.DecodeYAML([]byte(`
name: search
fields:
  q: string
  page: number?
  tags: array<string>?
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	search := verify.MustCompile(doc.Fields)

	out, err := search.Verify(map[string]any{"q": "go", "page": "2"})
	fmt.Println(out, err)

	// Output:
	// map[page:2 q:go tags:<nil>] <nil>
}
