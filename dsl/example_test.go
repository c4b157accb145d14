package dsl_test

import (
	"fmt"

	"github.com/reoring/wireskema/dsl"
)

func Example() {
	user := dsl.Record("User").
		Field("id", dsl.Str("Id")).
		Field("username", dsl.Str("Username")).
		Build()

	// Unknown fields are pruned during validation, so they never reach the
	// wire.
	wire, err := user.Serialize(map[string]any{
		"id":       "1",
		"username": "ann",
		"email":    "x@y.com",
	})
	if err != nil {
		panic(err)
	}

	v, err := user.Deserialize(wire)
	if err != nil {
		panic(err)
	}
	m := v.(map[string]any)
	fmt.Println(m["username"], len(m))
	// Output: ann 2
}
