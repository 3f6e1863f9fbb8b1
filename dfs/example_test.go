package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/reebskel/core"
	"github.com/katalvlaran/reebskel/dfs"
)

// ExampleDetectCycles shows two parallel arcs reported as a 2-cycle.
func ExampleDetectCycles() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 10, 20)
	_ = g.AddEdge(1, 20, 10)

	has, cycles, _ := dfs.DetectCycles(g)
	fmt.Println(has, cycles)
	// Output: true [[10 20]]
}
