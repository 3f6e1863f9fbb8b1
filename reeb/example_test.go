// SPDX-License-Identifier: MIT

package reeb_test

import (
	"fmt"

	"github.com/katalvlaran/reebskel/meshgen"
	"github.com/katalvlaran/reebskel/reeb"
	"github.com/katalvlaran/reebskel/weight"
)

// ExampleBuild extracts the skeleton of a three-legged tripod under a
// height field.
func ExampleBuild() {
	m, _ := meshgen.Build(nil, meshgen.Fan(3, 4))
	_ = weight.FromCoordinate(m, 2)
	weight.Renormalize(m, 8)
	weight.Spread(m)

	g, err := reeb.Build(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	root := g.Root()
	fmt.Printf("nodes=%d arcs=%d root=%d degree=%d\n", g.NumNodes(), g.NumArcs(), root.Index, root.Degree)
	// Output: nodes=4 arcs=3 root=0 degree=3
}
