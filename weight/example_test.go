// SPDX-License-Identifier: MIT

package weight_test

import (
	"fmt"

	"github.com/katalvlaran/reebskel/meshgen"
	"github.com/katalvlaran/reebskel/weight"
)

// ExampleRenormalize scales an X field to a 10-bucket resolution.
func ExampleRenormalize() {
	m, _ := meshgen.Build(nil, meshgen.Grid(1, 4))
	_ = weight.FromCoordinate(m, 0)
	weight.Renormalize(m, 10)
	fmt.Println(m.Weights()[:5])
	// Output: [0 2.5 5 7.5 10]
}
