package subiso_test

import (
	"context"
	"fmt"

	"github.com/orazve/subiso"
	"github.com/orazve/subiso/builder"
	"github.com/orazve/subiso/match"
)

// ExampleMatch lists the two ways a 3-vertex path sits inside a 4-cycle
// around vertex 0 as its center, out of eight in total.
func ExampleMatch() {
	target, _ := builder.BuildSnapshot(nil, nil, builder.Cycle(4))
	pattern, _ := builder.BuildSnapshot(nil, nil, builder.Path(3))

	res, err := subiso.Match(context.Background(), target, pattern, subiso.Descriptor{Kind: match.Induced})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.MatchCount)
	for _, row := range res.VertexMatch {
		if row[1] == 0 {
			fmt.Println(row)
		}
	}
	// Output:
	// 8
	// [1 0 3]
	// [3 0 1]
}
