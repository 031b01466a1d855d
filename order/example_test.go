package order_test

import (
	"fmt"

	"github.com/orazve/subiso/builder"
	"github.com/orazve/subiso/order"
)

// ExamplePlan plans a path 0-1-2-3: the walk starts at the first inner vertex.
func ExamplePlan() {
	p, _ := builder.BuildSnapshot(nil, nil, builder.Path(4))
	o, err := order.Plan(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(o.Sequence)
	for i, c := range o.Conditions {
		fmt.Println(i, c.NonNeighbors(), c.Neighbors())
	}
	// Output:
	// [1 2 0 3]
	// 0 [] []
	// 1 [] [0]
	// 2 [1] [0]
	// 3 [0 2] [1]
}
