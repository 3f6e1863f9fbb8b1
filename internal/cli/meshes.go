// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/reebskel/mesh"
	"github.com/katalvlaran/reebskel/meshgen"
)

// demoMeshes maps --mesh names to constructors. Vertex 0 of every shape is
// its lowest point and seeds the distance field.
var demoMeshes = map[string]meshgen.Constructor{
	"tripod":  meshgen.Fan(3, 6),
	"grid":    meshgen.Grid(6, 6),
	"branch":  meshgen.Branch(6, 2, 5),
	"annulus": meshgen.Annulus(16),
	"tube":    meshgen.Tube(8, 12),
	"diamond": meshgen.Diamond(),
}

func meshNames() string {
	names := make([]string, 0, len(demoMeshes))
	for n := range demoMeshes {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// demoMesh builds the named shape with vertex 0 selected.
func demoMesh(name string) (*mesh.Mesh, error) {
	ctor, ok := demoMeshes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown mesh %q (supported: %s)", name, meshNames())
	}
	m, err := meshgen.Build(nil, ctor)
	if err != nil {
		return nil, err
	}
	if err := m.Select(0); err != nil {
		return nil, err
	}
	return m, nil
}
