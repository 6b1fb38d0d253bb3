package schema_test

import (
	"fmt"

	"github.com/katalvlaran/dataverify/schema"
	"github.com/katalvlaran/dataverify/verifier"
)

// ExampleObject declares a nested schema as a Go literal.
func ExampleObject() {
	user := schema.Object(
		schema.Key("name", verifier.String()),
		schema.Key("tags", verifier.ArrayOf(verifier.String())),
		schema.Key("addr", schema.Object(
			schema.Key("city", verifier.String()),
			schema.Key("zip", verifier.StringNull()),
		)),
	)

	fmt.Println(schema.Validate(user))
	fmt.Println(user)

	// Output:
	// <nil>
	// {name: string, tags: array<string>, addr: {city: string, zip: string?}}
}

// ExampleParseType shows the type notation used by YAML documents.
func ExampleParseType() {
	for _, s := range []string{"number?", "array<date!>", "object"} {
		v, err := schema.ParseType(s)
		fmt.Println(v.Kind(), v.Nullable(), err)
	}

	// Output:
	// number true <nil>
	// array false <nil>
	// object false <nil>
}
