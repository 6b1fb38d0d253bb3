package fault_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dataverify/fault"
)

// ExampleStatusOf shows how a boundary layer turns a failure into a response.
func ExampleStatusOf() {
	err := fault.Within(fault.ParameterNull("city"), "addr")

	var fe *fault.Error
	if errors.As(err, &fe) {
		fmt.Println(fault.StatusOf(err), fe.Code())
		fmt.Println(fe.Message())
		fmt.Println(fe.Path)
	}

	// Output:
	// 400 PARAMETER_NOT_PROVIDED
	// Necessary parameter city is not provided.
	// addr.city
}
