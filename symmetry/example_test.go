// SPDX-License-Identifier: MIT

package symmetry_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/reebskel/meshgen"
	"github.com/katalvlaran/reebskel/reeb"
	"github.com/katalvlaran/reebskel/symmetry"
	"github.com/katalvlaran/reebskel/weight"
)

// ExampleAnnotate detects the three-fold symmetry of a tripod.
func ExampleAnnotate() {
	m, _ := meshgen.Build(nil, meshgen.Fan(3, 4))
	_ = weight.FromCoordinate(m, 2)
	weight.Renormalize(m, 8)
	weight.Spread(m)

	g, _ := reeb.Build(m)
	reeb.CalculateGraphLength(g)
	_ = symmetry.Annotate(context.Background(), g, nil, 10)
	fmt.Println(g.Root().SymmetryFlag, len(g.Arcs()))
	// Output: radial 3
}
